package database

import (
	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
)

var players = hashmap.New()
var tables = hashmap.New()

// Connected registers a freshly authenticated client. A second login with the
// same id replaces the first one in the registry.
func Connected(conn *network.Conn, info *model.AuthInfo) *Player {
	player := &Player{
		ID:   info.ID,
		Name: info.Name,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func getTable(tableId int64) *Table {
	if tableId == 0 {
		return nil
	}
	if v, ok := tables.Get(tableId); ok {
		return v.(*Table)
	}
	return nil
}

func deleteTable(table *Table) {
	if table != nil {
		tables.Del(table.ID)
	}
}
