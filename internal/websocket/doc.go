// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

/*
Package websocket relays watch-mode updates to local WebSocket subscribers.

The Hub fans backend log events and overview snapshots out to every client
connected to the status server's /api/ws endpoint. Each message is a JSON
envelope:

	{"type": "log", "data": {"time": "...", "level": "INFO", "message": "..."}}
	{"type": "overview", "data": {"overview": {...}, "updated_at": "..."}}

Clients may send {"type":"ping"} and receive {"type":"pong"}.

The Hub runs as a suture.Service. Broadcasts never block: when the hub
buffer is full the message is dropped, and a client whose send buffer is
full is disconnected.
*/
package websocket
