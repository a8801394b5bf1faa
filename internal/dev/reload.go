package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type      ReloadMessageType `json:"type"`
	Component string            `json:"component,omitempty"`
	Error     string            `json:"error,omitempty"`
	File      string            `json:"file,omitempty"`
}

// ReloadServer manages WebSocket connections for live reload.
type ReloadServer struct {
	clients  map[*websocket.Conn]*sync.Mutex
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadServer creates a new reload server. A nil logger uses slog.Default().
func NewReloadServer(logger *slog.Logger) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		clients: make(map[*websocket.Conn]*sync.Mutex),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // development only
			},
		},
		logger: logger,
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// client goes away.
func (r *ReloadServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "err", err)
		return
	}

	r.mu.Lock()
	r.clients[conn] = &sync.Mutex{}
	r.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.drop(conn)
}

// NotifyCSS tells clients that a component's stylesheet changed.
func (r *ReloadServer) NotifyCSS(component, file string) {
	r.Broadcast(ReloadMessage{Type: ReloadTypeCSS, Component: component, File: file})
}

// NotifyError sends an error message to all clients.
func (r *ReloadServer) NotifyError(file, errMsg string) {
	r.Broadcast(ReloadMessage{Type: ReloadTypeError, File: file, Error: errMsg})
}

// ClearError clears the error overlay on all clients.
func (r *ReloadServer) ClearError() {
	r.Broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// Broadcast sends msg to every connected client, dropping clients that
// fail to receive it.
func (r *ReloadServer) Broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	clients := make(map[*websocket.Conn]*sync.Mutex, len(r.clients))
	for conn, wmu := range r.clients {
		clients[conn] = wmu
	}
	r.mu.RUnlock()

	for conn, wmu := range clients {
		wmu.Lock()
		err := conn.WriteMessage(websocket.TextMessage, data)
		wmu.Unlock()
		if err != nil {
			r.logger.Debug("reload client dropped", "err", err)
			r.drop(conn)
		}
	}
}

func (r *ReloadServer) drop(conn *websocket.Conn) {
	r.mu.Lock()
	delete(r.clients, conn)
	r.mu.Unlock()
	conn.Close()
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close closes all client connections.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for conn := range r.clients {
		conn.Close()
		delete(r.clients, conn)
	}
}

// ClientScript is the browser side of live reload. It connects to
// /_reload, swaps <style id="Name-style"> contents on css messages and
// shows an overlay on errors.
const ClientScript = `(function() {
    'use strict';

    var delay = 1000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/_reload');

        ws.onopen = function() {
            delay = 1000;
            clearOverlay();
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            switch (msg.type) {
                case 'css':
                    reloadStyle(msg.component);
                    break;
                case 'error':
                    showOverlay(msg.file + '\n\n' + msg.error);
                    break;
                case 'clear':
                    clearOverlay();
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, 30000);
                connect();
            }, delay);
        };
    }

    function reloadStyle(name) {
        var id = name + '-style';
        fetch('/styles/' + encodeURIComponent(name) + '.css').then(function(res) {
            var el = document.getElementById(id);
            if (res.status === 404) {
                if (el) el.remove();
                return null;
            }
            return res.text();
        }).then(function(css) {
            if (css === null) return;
            var el = document.getElementById(id);
            if (!el) {
                el = document.createElement('style');
                el.id = id;
                document.head.appendChild(el);
            }
            el.textContent = css;
        });
    }

    function showOverlay(text) {
        clearOverlay();
        var pre = document.createElement('pre');
        pre.id = 'componentx-error-overlay';
        pre.style.cssText = 'position:fixed;inset:0;margin:0;padding:20px;background:rgba(0,0,0,0.9);color:#ff5555;font:14px monospace;white-space:pre-wrap;z-index:999999;';
        pre.textContent = text;
        document.body.appendChild(pre);
    }

    function clearOverlay() {
        var el = document.getElementById('componentx-error-overlay');
        if (el) el.remove();
    }

    connect();
})();`
