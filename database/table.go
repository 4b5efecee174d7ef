package database

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

var tableIds int64 = 0

// Table gathers clients until every seat is taken, then plays one match.
type Table struct {
	sync.Mutex

	ID         int64     `json:"id"`
	State      int       `json:"state"`
	Seats      int       `json:"seats"`
	ActiveTime time.Time `json:"activeTime"`

	players []*Player
}

func (t *Table) Players() []*Player {
	t.Lock()
	defer t.Unlock()
	players := make([]*Player, len(t.players))
	copy(players, t.players)
	return players
}

func (t *Table) String() string {
	return fmt.Sprintf("table %d (%s, %d/%d)", t.ID, consts.TableStates[t.State], len(t.players), t.Seats)
}

func (t *Table) leave(player *Player) {
	t.Lock()
	defer t.Unlock()
	t.ActiveTime = time.Now()
	if t.State == consts.TableStateRunning {
		t.broadcast(fmt.Sprintf("%s lost connection!\n", player.Name), player.ID)
		return
	}
	for i, p := range t.players {
		if p.ID == player.ID {
			t.players = append(t.players[:i], t.players[i+1:]...)
			break
		}
	}
	player.TableID = 0
	if len(t.players) == 0 {
		deleteTable(t)
		return
	}
	t.broadcast(fmt.Sprintf("%s left, waiting for %d more player(s).\n", player.Name, t.Seats-len(t.players)))
}

func (t *Table) broadcast(text string, exclude ...int64) {
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, p := range t.players {
		if !excludeSet[p.ID] && p.Online() {
			_ = p.WriteString(">> " + text)
		}
	}
}

// Lobby seats incoming clients at the table that is currently filling up.
type Lobby struct {
	sync.Mutex

	conf      config.Config
	listeners []event.Listener
	waiting   *Table
}

func NewLobby(conf config.Config, listeners ...event.Listener) (*Lobby, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if conf.TurnLimit == 0 {
		conf.TurnLimit = consts.DefaultTurnLimit
	}
	return &Lobby{conf: conf, listeners: listeners}, nil
}

// TurnLimit is the limit every match of this lobby runs with.
func (l *Lobby) TurnLimit() int {
	return l.conf.TurnLimit
}

// Join seats the player. The match starts in the background as soon as the
// table is full.
func (l *Lobby) Join(player *Player) (*Table, error) {
	if player == nil || !player.Online() {
		return nil, consts.ErrorsExist
	}
	l.Lock()
	defer l.Unlock()
	if l.waiting == nil || getTable(l.waiting.ID) == nil {
		l.waiting = &Table{
			ID:         atomic.AddInt64(&tableIds, 1),
			State:      consts.TableStateWaiting,
			Seats:      l.conf.Players,
			ActiveTime: time.Now(),
		}
		tables.Set(l.waiting.ID, l.waiting)
	}
	table := l.waiting
	table.Lock()
	defer table.Unlock()
	if len(table.players) >= table.Seats {
		return nil, consts.ErrorsTablePlayersIsFull
	}
	table.players = append(table.players, player)
	table.ActiveTime = time.Now()
	player.TableID = table.ID
	log.Infof("player %s joined %s\n", player, table)

	_ = player.WriteString(msg.Message.Welcome())
	if missing := table.Seats - len(table.players); missing > 0 {
		table.broadcast(fmt.Sprintf("%s joined table %d, waiting for %d more player(s).\n", player.Name, table.ID, missing))
		return table, nil
	}
	table.State = consts.TableStateRunning
	l.waiting = nil
	async.Async(func() {
		l.play(table)
	})
	return table, nil
}

func (l *Lobby) play(table *Table) {
	defer deleteTable(table)
	seated := table.Players()
	seats := make(map[int]game.Player, len(seated))
	remotes := make([]*RemotePlayer, 0, len(seated))
	for seat, p := range seated {
		remote := NewRemotePlayer(p.Name, p, l.conf.PlayTimeout)
		remotes = append(remotes, remote)
		seats[seat] = remote
	}

	g, err := game.New(len(seats), rand.New(rand.NewSource(l.seed(table))))
	if err != nil {
		log.Error(err)
		return
	}
	opts := []game.MatchOption{game.WithTurnLimit(l.TurnLimit())}
	for _, listener := range l.listeners {
		opts = append(opts, game.WithListener(listener))
	}
	m, err := game.NewMatch(g, seats, opts...)
	if err != nil {
		log.Error(err)
		return
	}
	result, err := m.Run()
	for _, remote := range remotes {
		remote.Close()
	}

	if err == nil {
		table.Lock()
		table.broadcast(summary(result, seats))
		table.Unlock()
	}

	for seat, p := range seated {
		p.TableID = 0
		if !remotes[seat].Gone() && p.Online() {
			if _, err := l.Join(p); err != nil {
				log.Error(err)
			}
		}
	}
}

func (l *Lobby) seed(table *Table) int64 {
	if l.conf.Seed != 0 {
		return l.conf.Seed + table.ID
	}
	return time.Now().UnixNano()
}

func summary(result game.Result, seats map[int]game.Player) string {
	var places []string
	for i, id := range result.Finishers {
		places = append(places, fmt.Sprintf("%d. %s", i+1, seats[id].Name()))
	}
	return fmt.Sprintf("Match %s over after %d turns: %s. %s is left holding cards.\n",
		result.ID, result.Turns, strings.Join(places, ", "), seats[result.Loser].Name())
}
