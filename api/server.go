// Server implements spec §6's procedural surface over JSON-RPC,
// grounded directly on the teacher's web/server.go: the same
// rpcRequest/rpcResponse envelope, the same "switch on method, decode
// params, call into state, marshal result" dispatch shape, and the
// same github.com/gorilla/websocket transport. EditorState there
// served a single shared buffer to a browser UI; Server here serves
// the full multi-handle editor command table to any host speaking
// JSON-RPC over a WebSocket.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/eyelash/platon-core/editor"
	"github.com/eyelash/platon-core/theme"
	"github.com/gorilla/websocket"
)

type rpcRequest struct {
	ID     any             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	ID     any       `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server exposes Handles over a WebSocket JSON-RPC endpoint.
type Server struct {
	handles  *Handles
	theme    *theme.Theme
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  []*wsClient
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewServer returns a Server dispatching onto handles, reporting t for
// every get_theme call.
func NewServer(handles *Handles, t *theme.Theme) *Server {
	return &Server{
		handles: handles,
		theme:   t,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	client := &wsClient{conn: conn}
	s.mu.Lock()
	s.clients = append(s.clients, client)
	s.mu.Unlock()

	defer func() {
		conn.Close()
		s.mu.Lock()
		for i, c := range s.clients {
			if c == client {
				s.clients = append(s.clients[:i], s.clients[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req rpcRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			continue
		}
		resp := s.HandleRPC(req.ID, req.Method, req.Params)
		data, _ := json.Marshal(resp)
		client.mu.Lock()
		_ = conn.WriteMessage(websocket.TextMessage, data)
		client.mu.Unlock()
	}
}

// HandleRPC dispatches one request and returns its response; exported
// so a non-WebSocket host (tests, an in-process embedder) can call the
// same command table directly.
func (s *Server) HandleRPC(id any, method string, params json.RawMessage) rpcResponse {
	// Commands from every connection run one at a time, so no editor is
	// ever driven by two commands at once.
	s.mu.Lock()
	defer s.mu.Unlock()
	result, err := s.dispatch(method, params)
	if err != nil {
		return rpcResponse{ID: id, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	return rpcResponse{ID: id, Result: result}
}

func decode[T any](params json.RawMessage) (T, error) {
	var v T
	if len(params) == 0 {
		return v, nil
	}
	err := json.Unmarshal(params, &v)
	return v, err
}

type handleParams struct {
	Handle Handle `json:"handle"`
}

type pathParams struct {
	Path string `json:"path"`
}

type textParams struct {
	Handle Handle `json:"handle"`
	Text   string `json:"text"`
}

type extendParams struct {
	Handle Handle `json:"handle"`
	Extend bool   `json:"extend"`
}

type pointParams struct {
	Handle Handle `json:"handle"`
	Col    int    `json:"col"`
	Line   int    `json:"line"`
}

type renderParams struct {
	Handle Handle `json:"handle"`
	First  int    `json:"first"`
	Last   int    `json:"last"`
}

type saveParams struct {
	Handle Handle `json:"handle"`
	Path   string `json:"path"`
}

func (s *Server) dispatch(method string, raw json.RawMessage) (any, error) {
	switch method {
	case "new":
		return map[string]Handle{"handle": s.handles.New()}, nil

	case "new_from_file":
		p, err := decode[pathParams](raw)
		if err != nil {
			return nil, err
		}
		h, err := s.handles.NewFromFile(p.Path)
		if err != nil {
			return nil, err
		}
		return map[string]Handle{"handle": h}, nil

	case "free":
		p, err := decode[handleParams](raw)
		if err != nil {
			return nil, err
		}
		s.handles.Free(p.Handle)
		return nil, nil

	case "get_total_lines":
		e, err := s.editorFor(raw)
		if err != nil {
			return nil, err
		}
		return e.TotalLines(), nil

	case "render":
		p, err := decode[renderParams](raw)
		if err != nil {
			return nil, err
		}
		e, err := s.handles.Get(p.Handle)
		if err != nil {
			return nil, err
		}
		return toWireLines(e.Render(p.First, p.Last)), nil

	case "get_theme":
		return toThemeWire(s.theme), nil

	case "insert_text":
		p, err := decode[textParams](raw)
		if err != nil {
			return nil, err
		}
		e, err := s.handles.Get(p.Handle)
		if err != nil {
			return nil, err
		}
		e.InsertText(p.Text)
		return nil, nil

	case "insert_newline":
		return nil, s.withEditor(raw, func(e *editor.Editor) { e.InsertNewline() })

	case "delete_backward":
		return nil, s.withEditor(raw, func(e *editor.Editor) { e.DeleteBackward() })

	case "delete_forward":
		return nil, s.withEditor(raw, func(e *editor.Editor) { e.DeleteForward() })

	case "set_cursor":
		p, err := decode[pointParams](raw)
		if err != nil {
			return nil, err
		}
		e, err := s.handles.Get(p.Handle)
		if err != nil {
			return nil, err
		}
		e.SetCursor(p.Col, p.Line)
		return nil, nil

	case "toggle_cursor":
		p, err := decode[pointParams](raw)
		if err != nil {
			return nil, err
		}
		e, err := s.handles.Get(p.Handle)
		if err != nil {
			return nil, err
		}
		e.ToggleCursor(p.Col, p.Line)
		return nil, nil

	case "extend_selection":
		p, err := decode[pointParams](raw)
		if err != nil {
			return nil, err
		}
		e, err := s.handles.Get(p.Handle)
		if err != nil {
			return nil, err
		}
		e.ExtendSelection(p.Col, p.Line)
		return nil, nil

	case "move_left":
		return nil, s.withExtend(raw, func(e *editor.Editor, extend bool) { e.MoveLeft(extend) })
	case "move_right":
		return nil, s.withExtend(raw, func(e *editor.Editor, extend bool) { e.MoveRight(extend) })
	case "move_up":
		return nil, s.withExtend(raw, func(e *editor.Editor, extend bool) { e.MoveUp(extend) })
	case "move_down":
		return nil, s.withExtend(raw, func(e *editor.Editor, extend bool) { e.MoveDown(extend) })
	case "move_to_beginning_of_line":
		return nil, s.withExtend(raw, func(e *editor.Editor, extend bool) { e.MoveToBeginningOfLine(extend) })
	case "move_to_end_of_line":
		return nil, s.withExtend(raw, func(e *editor.Editor, extend bool) { e.MoveToEndOfLine(extend) })
	case "move_to_beginning_of_word":
		return nil, s.withExtend(raw, func(e *editor.Editor, extend bool) { e.MoveToBeginningOfWord(extend) })
	case "move_to_end_of_word":
		return nil, s.withExtend(raw, func(e *editor.Editor, extend bool) { e.MoveToEndOfWord(extend) })

	case "select_all":
		return nil, s.withEditor(raw, func(e *editor.Editor) { e.SelectAll() })

	case "copy":
		e, err := s.editorFor(raw)
		if err != nil {
			return nil, err
		}
		return e.Copy(), nil

	case "cut":
		e, err := s.editorFor(raw)
		if err != nil {
			return nil, err
		}
		return e.Cut(), nil

	case "paste":
		p, err := decode[textParams](raw)
		if err != nil {
			return nil, err
		}
		e, err := s.handles.Get(p.Handle)
		if err != nil {
			return nil, err
		}
		e.Paste(p.Text)
		return nil, nil

	case "save":
		p, err := decode[saveParams](raw)
		if err != nil {
			return nil, err
		}
		e, err := s.handles.Get(p.Handle)
		if err != nil {
			return nil, err
		}
		return nil, e.Save(p.Path)

	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func (s *Server) editorFor(raw json.RawMessage) (*editor.Editor, error) {
	p, err := decode[handleParams](raw)
	if err != nil {
		return nil, err
	}
	return s.handles.Get(p.Handle)
}

func (s *Server) withEditor(raw json.RawMessage, fn func(*editor.Editor)) error {
	e, err := s.editorFor(raw)
	if err != nil {
		return err
	}
	fn(e)
	return nil
}

func (s *Server) withExtend(raw json.RawMessage, fn func(*editor.Editor, bool)) error {
	p, err := decode[extendParams](raw)
	if err != nil {
		return err
	}
	e, err := s.handles.Get(p.Handle)
	if err != nil {
		return err
	}
	fn(e, p.Extend)
	return nil
}

// Broadcast sends a notification to every connected client.
func (s *Server) Broadcast(method string, params any) {
	msg, err := json.Marshal(map[string]any{"method": method, "params": params})
	if err != nil {
		return
	}
	s.mu.Lock()
	clients := append([]*wsClient(nil), s.clients...)
	s.mu.Unlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
		c.mu.Unlock()
	}
}
