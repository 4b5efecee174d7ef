package database

import (
	"fmt"
	stringx "strings"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/uno/consts"
)

// Player is a connected client. Packets are only queued while a question is
// open; everything else the client sends is dropped.
type Player struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	TableID int64  `json:"tableId"`

	conn   *network.Conn
	data   chan *protocol.Packet
	read   atomic.Bool
	online atomic.Bool
}

func (p *Player) WriteString(data string) error {
	time.Sleep(30 * time.Millisecond)
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return p.conn.Write(protocol.Packet{
		Body: []byte(err.Error() + "\n"),
	})
}

func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if p.read.Load() {
			p.data <- pack
		}
	}
}

// Offline must only be called once Listening has returned.
func (p *Player) Offline() {
	if !p.online.Swap(false) {
		return
	}
	_ = p.conn.Close()
	close(p.data)
	if getPlayer(p.ID) == p {
		players.Del(p.ID)
	}
	if table := getTable(p.TableID); table != nil {
		table.leave(p)
	}
	log.Infof("player %s went offline\n", p)
}

func (p *Player) Online() bool {
	return p.online.Load()
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	return p.askForPacket(timeout...)
}

func (p *Player) askForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	var packet *protocol.Packet
	if len(timeout) > 0 {
		select {
		case packet = <-p.data:
		case <-time.After(timeout[0]):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-p.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	if stringx.ToLower(stringx.TrimSpace(packet.String())) == "exit" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return packet.String(), nil
}

func (p *Player) StartTransaction() {
	p.read.Store(true)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	p.read.Store(false)
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
	p.online.Store(true)
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
