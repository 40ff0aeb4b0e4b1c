package server

import (
	"log"
	"net/http"
)

// WSHandler upgrades the connection and attaches it to the single table
// session.
func WSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	GetSession().HandleConnection(conn)
}
