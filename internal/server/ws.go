package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/persona-sh/personas-site-go/internal/catalog"
	"github.com/persona-sh/personas-site-go/internal/util"
)

const (
	socketWriteTimeout = 10 * time.Second
	socketReadLimit    = 4 << 10

	// Hits carry a preview, not the full description.
	hitDescriptionRunes = 160
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Pages and socket are served from the same origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// searchFrame is one filter state sent by the browse page as the visitor
// types. Fields mirror the bookmarkable query parameters.
type searchFrame struct {
	Search        string `json:"q"`
	Category      string `json:"category"`
	HasWorkflows  bool   `json:"workflows"`
	HasBlueprints bool   `json:"blueprints"`
}

type searchHit struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"displayName"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type searchResult struct {
	Count int         `json:"count"`
	Hits  []searchHit `json:"hits"`
}

// handleSearchSocket streams filter results back for every query frame the
// client sends, closing when the client disconnects.
func (h *Handler) handleSearchSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Socket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(socketReadLimit)

	h.logger.Debug("Search socket opened", zap.String("remote", r.RemoteAddr))

	for {
		var frame searchFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Search socket read failed", zap.Error(err))
			}
			return
		}

		matched := catalog.Filter(h.store.Personas(), catalog.Query{
			Search:        frame.Search,
			Category:      frame.Category,
			HasWorkflows:  frame.HasWorkflows,
			HasBlueprints: frame.HasBlueprints,
		})

		result := searchResult{Count: len(matched), Hits: make([]searchHit, 0, len(matched))}
		for _, p := range matched {
			result.Hits = append(result.Hits, searchHit{
				Slug:        p.Slug,
				DisplayName: p.DisplayName,
				Category:    p.Category,
				Description: util.TruncateString(p.Description, hitDescriptionRunes),
			})
		}

		conn.SetWriteDeadline(time.Now().Add(socketWriteTimeout))
		if err := conn.WriteJSON(result); err != nil {
			h.logger.Warn("Search socket write failed", zap.Error(err))
			return
		}
	}
}
