package broadcast

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/tushyr/thekabar/internal/domain"
	"github.com/tushyr/thekabar/internal/metrics"
)

const (
	commandTimeout = 5 * time.Second
	stopTimeout    = 10 * time.Second
)

// hubCmd is the command interface for the Hub actor.
type hubCmd interface{ isHubCmd() }

type baseHubCmd struct{}

func (baseHubCmd) isHubCmd() {}

type registerCmd struct {
	baseHubCmd
	connection   *websocket.Conn
	errorChannel chan error
}

type unregisterCmd struct {
	baseHubCmd
	connection *websocket.Conn
}

type publishCmd struct {
	baseHubCmd
	update domain.StatusUpdate
}

type clientCountCmd struct {
	baseHubCmd
	replyChannel chan int
}

type stopCmd struct {
	baseHubCmd
}

// Hub fans status updates out to every connected stream client. It runs as
// a single goroutine consuming commands, so the client map needs no lock.
type Hub struct {
	cmdCh      chan hubCmd
	clock      clockwork.Clock
	clients    map[*websocket.Conn]*clientWriter
	done       chan struct{}
	maxClients int
}

// NewHub creates a hub and starts its goroutine. maxClients limits concurrent
// stream connections to bound resource use.
func NewHub(clock clockwork.Clock, maxClients int) *Hub {
	h := &Hub{
		cmdCh:      make(chan hubCmd, 256),
		clock:      clock,
		clients:    make(map[*websocket.Conn]*clientWriter),
		done:       make(chan struct{}),
		maxClients: maxClients,
	}
	go h.run()
	return h
}

// Register adds a stream client. Returns an error if the client limit is
// reached, in which case the connection has already been closed.
func (h *Hub) Register(conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	h.cmdCh <- registerCmd{connection: conn, errorChannel: errCh}

	timer := h.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case err := <-errCh:
		return err
	case <-timer.Chan():
		return fmt.Errorf("register command timed out after %v", commandTimeout)
	}
}

// Unregister removes a stream client and stops its writer.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.cmdCh <- unregisterCmd{connection: conn}
}

// Publish queues a status update for broadcast to all connected clients.
// Non-blocking for callers; the report path never waits on the stream.
func (h *Hub) Publish(update domain.StatusUpdate) {
	select {
	case h.cmdCh <- publishCmd{update: update}:
	default:
		slog.Warn("Status stream command channel full, dropping update", "shop_id", update.ShopID)
	}
}

// ClientCount returns the number of connected clients, or -1 on timeout.
func (h *Hub) ClientCount() int {
	replyCh := make(chan int, 1)
	h.cmdCh <- clientCountCmd{replyChannel: replyCh}

	timer := h.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case count := <-replyCh:
		return count
	case <-timer.Chan():
		slog.Warn("ClientCount timed out", "timeout", commandTimeout)
		return -1
	}
}

// Stop shuts the hub down, closing all client connections. Blocks until the
// hub goroutine has exited or the stop timeout is reached.
func (h *Hub) Stop() {
	h.cmdCh <- stopCmd{}

	timer := h.clock.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case <-h.done:
		slog.Info("Status stream hub stopped gracefully")
	case <-timer.Chan():
		slog.Warn("Status stream hub stop timeout exceeded", "timeout", stopTimeout)
	}
}

func (h *Hub) run() {
	defer close(h.done)

	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case registerCmd:
			h.handleRegister(c)
		case unregisterCmd:
			h.handleUnregister(c.connection)
		case publishCmd:
			h.handlePublish(c.update)
		case clientCountCmd:
			c.replyChannel <- len(h.clients)
		case stopCmd:
			h.handleStop()
			return
		default:
			slog.Warn("Status stream hub received unknown command type", "command_type", fmt.Sprintf("%T", cmd))
		}
	}
}

func (h *Hub) handleRegister(c registerCmd) {
	if len(h.clients) >= h.maxClients {
		slog.Warn("Rejecting stream client: max clients reached", "max_clients", h.maxClients)
		_ = c.connection.Close()
		c.errorChannel <- fmt.Errorf("max stream clients (%d) reached", h.maxClients)
		return
	}

	h.clients[c.connection] = newClientWriter(c.connection, h.clock)
	metrics.WebsocketClients.Set(float64(len(h.clients)))

	slog.Debug("Stream client registered", "total_clients", len(h.clients))
	c.errorChannel <- nil
}

func (h *Hub) handleUnregister(conn *websocket.Conn) {
	cw, exists := h.clients[conn]
	if !exists {
		return
	}

	cw.stop()
	delete(h.clients, conn)
	metrics.WebsocketClients.Set(float64(len(h.clients)))

	slog.Debug("Stream client unregistered", "remaining_clients", len(h.clients))
}

func (h *Hub) handlePublish(update domain.StatusUpdate) {
	if len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(update)
	if err != nil {
		slog.Error("Failed to marshal status update", "error", err)
		return
	}

	var slow []*websocket.Conn
	for conn, writer := range h.clients {
		select {
		case writer.sendChannel <- data:
		default:
			slow = append(slow, conn)
		}
	}

	for _, conn := range slow {
		slog.Warn("Disconnecting slow stream client")
		metrics.WebsocketSlowClientsEvicted.Inc()
		h.handleUnregister(conn)
	}

	metrics.WebsocketUpdatesTotal.Inc()
}

func (h *Hub) handleStop() {
	slog.Info("Status stream hub shutting down", "clients", len(h.clients))

	for conn, cw := range h.clients {
		cw.stopGraceful("Server shutting down")
		delete(h.clients, conn)
	}
	metrics.WebsocketClients.Set(0)
}
