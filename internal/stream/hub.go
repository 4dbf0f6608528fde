// Package stream implements the live-feed hub: a fan-out point that pushes
// each newly persisted Content Item to connected websocket subscribers the
// moment ingestion completes, so dashboards see new data without polling
// /data. Delivery is fire-and-forget; the feed never affects whether an
// item was persisted.
package stream

// Client represents one connected feed subscriber.
type Client struct {
	// Source is the origin this client is watching (e.g. "twitter").
	// The empty string subscribes to items from every source.
	Source string

	// Send is the buffered channel of outgoing messages. The Hub writes
	// encoded items here; the websocket handler drains it to the socket.
	// The Hub closes it when the client is dropped.
	Send chan []byte
}

// Hub tracks all active subscribers, grouped by the source they watch.
// Registration, unregistration, and broadcast all flow through channels into
// a single goroutine, so the subscriber map is only ever touched from Run
// and needs no locking.
type Hub struct {
	// subscribers maps a source filter to the set of clients watching it.
	// A map[*Client]bool is the usual Go stand-in for a set.
	subscribers map[string]map[*Client]bool

	broadcast  chan *event
	register   chan *Client
	unregister chan *Client
}

// event is one item to fan out, tagged with the source it came from.
type event struct {
	source string
	data   []byte
}

// NewHub creates an empty hub. The broadcast channel is buffered so the
// ingest handler never blocks on a briefly busy hub goroutine; register and
// unregister are unbuffered because those need to complete synchronously.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*Client]bool),
		broadcast:   make(chan *event, 256),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
	}
}

// Run is the hub's event loop and must be started in its own goroutine
// ("go hub.Run()"). It blocks forever, handling one event at a time.
func (h *Hub) Run() {
	for {
		select {

		case client := <-h.register:
			if h.subscribers[client.Source] == nil {
				h.subscribers[client.Source] = make(map[*Client]bool)
			}
			h.subscribers[client.Source][client] = true

		case client := <-h.unregister:
			h.drop(client)

		case ev := <-h.broadcast:
			// An item goes to the clients watching its specific source and
			// to the wildcard ("") subscribers.
			h.fanOut(h.subscribers[ev.source], ev.data)
			if ev.source != "" {
				h.fanOut(h.subscribers[""], ev.data)
			}
		}
	}
}

// fanOut delivers data to every client in the set. A client whose Send
// buffer is already full is too slow to keep up and is dropped on the spot;
// blocking here would stall delivery for everyone else. Run only.
func (h *Hub) fanOut(clients map[*Client]bool, data []byte) {
	for client := range clients {
		select {
		case client.Send <- data:
		default:
			h.drop(client)
		}
	}
}

// drop removes a client and closes its Send channel, which tells the
// websocket writer goroutine to shut down. Safe to call twice for the same
// client: the map lookup makes the second call a no-op. Run only.
func (h *Hub) drop(client *Client) {
	clients, ok := h.subscribers[client.Source]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.subscribers, client.Source)
	}
}

// Broadcast queues a persisted item for delivery to matching subscribers.
// Called by the ingest handler after a successful insert.
func (h *Hub) Broadcast(source string, data []byte) {
	h.broadcast <- &event{source: source, data: data}
}

// Register adds a client so it starts receiving items for its source.
// Called when a websocket connection is opened.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client when its websocket connection closes.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}
