package api

import (
	"encoding/json"
	"testing"

	"github.com/eyelash/platon-core/theme"
)

func mustParams(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	return data
}

func newTestServer() (*Server, Handle) {
	handles := NewHandles()
	s := NewServer(handles, theme.Default())
	id := handles.New()
	return s, id
}

func TestHandleRPCNewReturnsUsableHandle(t *testing.T) {
	handles := NewHandles()
	s := NewServer(handles, theme.Default())
	resp := s.HandleRPC(1, "new", nil)
	if resp.Error != nil {
		t.Fatalf("new: %v", resp.Error)
	}
	result, ok := resp.Result.(map[string]Handle)
	if !ok {
		t.Fatalf("result type = %T", resp.Result)
	}
	if _, err := handles.Get(result["handle"]); err != nil {
		t.Fatalf("Get(handle) = %v", err)
	}
}

func TestHandleRPCInsertTextThenRender(t *testing.T) {
	s, id := newTestServer()

	resp := s.HandleRPC(1, "insert_text", mustParams(t, textParams{Handle: id, Text: "hi"}))
	if resp.Error != nil {
		t.Fatalf("insert_text: %v", resp.Error)
	}

	resp = s.HandleRPC(2, "render", mustParams(t, renderParams{Handle: id, First: 0, Last: 1}))
	if resp.Error != nil {
		t.Fatalf("render: %v", resp.Error)
	}
	lines, ok := resp.Result.([]lineWire)
	if !ok || len(lines) != 1 {
		t.Fatalf("result = %#v", resp.Result)
	}
	if lines[0].Text != "hi\n" {
		t.Fatalf("lines[0].Text = %q, want %q", lines[0].Text, "hi\n")
	}
}

func TestHandleRPCUnknownMethodErrors(t *testing.T) {
	s, _ := newTestServer()
	resp := s.HandleRPC(1, "no_such_method", nil)
	if resp.Error == nil {
		t.Fatal("expected an error for an unknown method")
	}
}

func TestHandleRPCUnknownHandleErrors(t *testing.T) {
	s, _ := newTestServer()
	resp := s.HandleRPC(1, "get_total_lines", mustParams(t, handleParams{Handle: Handle{}}))
	if resp.Error == nil {
		t.Fatal("expected an error for an unassigned handle")
	}
}

func TestHandleRPCFreeThenUseErrors(t *testing.T) {
	s, id := newTestServer()
	s.HandleRPC(1, "free", mustParams(t, handleParams{Handle: id}))
	resp := s.HandleRPC(2, "get_total_lines", mustParams(t, handleParams{Handle: id}))
	if resp.Error == nil {
		t.Fatal("expected an error after free")
	}
}

func TestHandleRPCGetThemeReturnsEightStyles(t *testing.T) {
	s, _ := newTestServer()
	resp := s.HandleRPC(1, "get_theme", nil)
	if resp.Error != nil {
		t.Fatalf("get_theme: %v", resp.Error)
	}
	w, ok := resp.Result.(themeWire)
	if !ok {
		t.Fatalf("result type = %T", resp.Result)
	}
	if len(w.Styles) != 8 {
		t.Fatalf("len(Styles) = %d, want 8", len(w.Styles))
	}
}

func TestHandleRPCMoveAndDeleteMutateBuffer(t *testing.T) {
	s, id := newTestServer()
	s.HandleRPC(1, "insert_text", mustParams(t, textParams{Handle: id, Text: "abc"}))
	s.HandleRPC(2, "set_cursor", mustParams(t, pointParams{Handle: id, Col: 0, Line: 0}))
	s.HandleRPC(3, "move_right", mustParams(t, extendParams{Handle: id, Extend: false}))
	resp := s.HandleRPC(4, "delete_forward", mustParams(t, handleParams{Handle: id}))
	if resp.Error != nil {
		t.Fatalf("delete_forward: %v", resp.Error)
	}
	render := s.HandleRPC(5, "render", mustParams(t, renderParams{Handle: id, First: 0, Last: 1}))
	lines := render.Result.([]lineWire)
	if lines[0].Text != "ac\n" {
		t.Fatalf("lines[0].Text = %q, want %q", lines[0].Text, "ac\n")
	}
}

func TestHandleRPCCopyAndCut(t *testing.T) {
	s, id := newTestServer()
	s.HandleRPC(1, "insert_text", mustParams(t, textParams{Handle: id, Text: "abc"}))
	s.HandleRPC(2, "select_all", mustParams(t, handleParams{Handle: id}))

	copyResp := s.HandleRPC(3, "copy", mustParams(t, handleParams{Handle: id}))
	if copyResp.Result.(string) != "abc" {
		t.Fatalf("copy = %v", copyResp.Result)
	}

	cutResp := s.HandleRPC(4, "cut", mustParams(t, handleParams{Handle: id}))
	if cutResp.Result.(string) != "abc" {
		t.Fatalf("cut = %v", cutResp.Result)
	}
	render := s.HandleRPC(5, "render", mustParams(t, renderParams{Handle: id, First: 0, Last: 1}))
	lines := render.Result.([]lineWire)
	if lines[0].Text != "\n" {
		t.Fatalf("lines[0].Text after cut = %q", lines[0].Text)
	}
}
