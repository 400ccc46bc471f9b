package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quiz-screen/internal/app"
	"quiz-screen/internal/domain"
	"quiz-screen/internal/infra/memory"

	"github.com/gorilla/websocket"
)

func TestWebSocketQuizFlow(t *testing.T) {
	server := newTestServer(t, 10*time.Millisecond)
	defer server.Close()

	conn := dial(t, server, "quiz-1")
	defer conn.Close()

	// The freshly opened session is idle.
	screen := readScreen(t, conn)
	if screen.Kind != domain.ScreenStart || screen.Total != 2 {
		t.Fatalf("expected start screen, got %+v", screen)
	}

	send(t, conn, map[string]any{"type": "start"})
	screen = readScreen(t, conn)
	if screen.Kind != domain.ScreenQuestion || screen.Number != 1 || len(screen.Answers) != 3 {
		t.Fatalf("expected question 1, got %+v", screen)
	}

	send(t, conn, map[string]any{"type": "answer", "payload": map[string]any{"index": 0}})
	screen = readScreen(t, conn)
	if screen.Kind != domain.ScreenAnswered || screen.Feedback == nil {
		t.Fatalf("expected answered screen, got %+v", screen)
	}
	if screen.Feedback.Correct || !screen.Feedback.Answers[1].Correct || !screen.Feedback.Answers[0].Selected {
		t.Fatalf("expected wrong pick with correct answer marked, got %+v", screen.Feedback)
	}

	// The advance arrives on its own after the delay.
	screen = readScreen(t, conn)
	if screen.Kind != domain.ScreenQuestion || screen.Number != 2 || screen.Progress != 50 {
		t.Fatalf("expected question 2, got %+v", screen)
	}

	send(t, conn, map[string]any{"type": "answer", "payload": map[string]any{"index": 1}})
	_ = readScreen(t, conn)
	screen = readScreen(t, conn)
	if screen.Kind != domain.ScreenResults || screen.Summary == nil || screen.Summary.Score != 1 {
		t.Fatalf("expected results with score 1, got %+v", screen)
	}

	send(t, conn, map[string]any{"type": "restart"})
	screen = readScreen(t, conn)
	if screen.Kind != domain.ScreenQuestion || screen.Number != 1 || screen.Score != 0 {
		t.Fatalf("expected fresh question 1, got %+v", screen)
	}
}

func TestWebSocketReportsBadInput(t *testing.T) {
	server := newTestServer(t, time.Hour)
	defer server.Close()

	conn := dial(t, server, "quiz-1")
	defer conn.Close()
	_ = readScreen(t, conn)

	send(t, conn, map[string]any{"type": "answer", "payload": map[string]any{"index": 0}})
	if msg := readMessage(t, conn); msg.Type != "error" || !strings.Contains(msg.Payload.Message, "not started") {
		t.Fatalf("expected not-started error, got %+v", msg)
	}

	send(t, conn, map[string]any{"type": "dance"})
	if msg := readMessage(t, conn); msg.Type != "error" {
		t.Fatalf("expected error, got %+v", msg)
	}
}

func TestWebSocketUnknownQuiz(t *testing.T) {
	server := newTestServer(t, time.Hour)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?quizId=nope"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if err == nil {
		t.Fatalf("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %+v", resp)
	}
}

func newTestServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()
	store := memory.NewSessionStore()
	quizRepo := memory.NewQuizRepository(memory.NewStaticQuizLoader(sampleQuiz()), time.Minute)
	service := app.NewQuizService(store, quizRepo, app.WithAdvanceDelay(delay))
	wsHandler := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	return httptest.NewServer(mux)
}

func dial(t *testing.T, server *httptest.Server, quizID string) *websocket.Conn {
	t.Helper()
	u := "ws" + server.URL[len("http"):] + "/ws?quizId=" + quizID
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg map[string]any) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
}

type testMessage struct {
	Type    string `json:"type"`
	Payload struct {
		domain.Screen
		Message string `json:"message"`
	} `json:"payload"`
}

func readMessage(t *testing.T, conn *websocket.Conn) testMessage {
	t.Helper()
	var msg testMessage
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	return msg
}

func readScreen(t *testing.T, conn *websocket.Conn) domain.Screen {
	t.Helper()
	msg := readMessage(t, conn)
	if msg.Type != "screen" {
		t.Fatalf("expected screen, got %s (%s)", msg.Type, msg.Payload.Message)
	}
	return msg.Payload.Screen
}

func sampleQuiz() map[string]domain.Quiz {
	return map[string]domain.Quiz{
		"quiz-1": {
			ID: "quiz-1",
			Questions: []domain.Question{
				{
					Text: "What is 2 + 2?",
					Answers: []domain.Answer{
						{Text: "3", Correct: false},
						{Text: "4", Correct: true},
						{Text: "5", Correct: false},
					},
				},
				{
					Text: "What is the chemical symbol for gold?",
					Answers: []domain.Answer{
						{Text: "Ag", Correct: false},
						{Text: "Au", Correct: true},
					},
				},
			},
		},
	}
}
