package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"quiz-screen/internal/app"
	"quiz-screen/internal/domain"

	"github.com/gorilla/websocket"
)

// WSHandler is the browser-facing view: it forwards start/answer/restart
// intents into a quiz session and streams back every screen the session
// produces. Highlighting is the client's job, from the feedback facts.
type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Index *int `json:"index"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and opens one quiz session per
// connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizID := r.URL.Query().Get("quizId")
	if quizID == "" {
		http.Error(w, "missing quizId", http.StatusBadRequest)
		return
	}

	session, err := h.service.Open(r.Context(), quizID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrQuizNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrEmptyQuiz), errors.Is(err, domain.ErrInvalidQuestion):
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	defer h.service.Close(r.Context(), session.ID())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel, err := h.service.Subscribe(r.Context(), session.ID())
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// Single writer: gorilla connections do not support concurrent writes.
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case screen, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "screen", Payload: screen}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.dispatch(r, session.ID(), inbound); err != nil {
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

// dispatch applies one inbound intent. Screens reach the client through the
// subscription, so only errors are returned here.
func (h *WSHandler) dispatch(r *http.Request, sessionID string, inbound inboundMessage) error {
	ctx := r.Context()
	switch inbound.Type {
	case "start":
		_, err := h.service.Start(ctx, sessionID)
		return err
	case "restart":
		_, err := h.service.Restart(ctx, sessionID)
		return err
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.Index == nil {
			return errors.New("invalid answer payload")
		}
		_, err := h.service.SelectAnswer(ctx, sessionID, *payload.Index)
		return err
	default:
		return errors.New("unsupported message type")
	}
}
