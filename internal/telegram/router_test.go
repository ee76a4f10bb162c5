package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRouter_DispatchAndOffset(t *testing.T) {
	var polls atomic.Int64
	var lastOffset atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params map[string]any
		json.NewDecoder(r.Body).Decode(&params)
		lastOffset.Store(int64(params["offset"].(float64)))

		if polls.Add(1) == 1 {
			fmt.Fprint(w, `{"ok":true,"result":[
				{"update_id":10,"callback_query":{"id":"cb1","from":{"id":42,"username":"trader"},"data":"move_list_btc"}},
				{"update_id":11,"callback_query":{"id":"cb2","from":{"id":42},"data":"unknown_token"}},
				{"update_id":12,"message":{"message_id":5,"chat":{"id":42},"text":"hi"}}
			]}`)
			return
		}
		fmt.Fprint(w, `{"ok":true,"result":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	router := NewRouter(client, time.Millisecond, nil)

	handled := make(chan CallbackQuery, 1)
	router.HandleCallback("move_list_btc", func(ctx context.Context, cb CallbackQuery) {
		handled <- cb
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		router.Run(ctx)
		close(done)
	}()

	select {
	case cb := <-handled:
		if cb.ID != "cb1" || cb.From.Username != "trader" {
			t.Errorf("callback = %+v", cb)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never invoked")
	}

	// Wait for at least one more poll, then check the offset advanced
	// past the highest seen update.
	deadline := time.After(2 * time.Second)
	for polls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("second poll never happened")
		case <-time.After(10 * time.Millisecond):
		}
	}
	if got := lastOffset.Load(); got != 13 {
		t.Errorf("offset = %d, want 13", got)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestRouter_SurvivesPollErrors(t *testing.T) {
	var polls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"ok":true,"result":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	router := NewRouter(client, time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		router.Run(ctx)
		close(done)
	}()

	<-done
	if polls.Load() < 2 {
		t.Errorf("polls = %d, want loop to continue after an error", polls.Load())
	}
}
