// fakebackend serves an in-memory node tree over the same HTTP surface
// the maintenance client talks to. Point the CLI at it with
// remote.baseURL: http://127.0.0.1:18090 to exercise a full run without
// touching real storage. Any account/secret pair is accepted except
// secret "wrong", which returns 401.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

type node struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Type     string `json:"type"`
	Name     string `json:"name"`
}

type store struct {
	mu    sync.Mutex
	nodes map[string]node
}

func seed() map[string]node {
	nodes := map[string]node{
		"root": {ID: "root", Type: "folder", Name: "Cloud Drive"},
		"f1":   {ID: "f1", ParentID: "root", Type: "folder", Name: "Projects"},
		"f2":   {ID: "f2", ParentID: "root", Type: "folder", Name: "Projects Archive"},
		"f3":   {ID: "f3", ParentID: "f1", Type: "folder", Name: "Reports"},
	}
	for i := 1; i <= 8; i++ {
		id := fmt.Sprintf("n%d", i)
		ext := ".jpg"
		if i%3 == 0 {
			ext = ".pdf"
		}
		nodes[id] = node{ID: id, ParentID: "f1", Type: "file", Name: fmt.Sprintf("IMG_%04d%s", 9000+i, ext)}
	}
	nodes["n100"] = node{ID: "n100", ParentID: "f3", Type: "file", Name: "summary.pdf"}
	nodes["n101"] = node{ID: "n101", ParentID: "f3", Type: "file", Name: "notes.txt"}
	return nodes
}

func main() {
	addr := flag.String("addr", "127.0.0.1:18090", "Listen address")
	flag.Parse()

	s := &store{nodes: seed()}
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/auth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var creds struct {
			Account string `json:"account"`
			Secret  string `json:"secret"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Account == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if creds.Secret == "wrong" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "fake-" + creds.Account})
	})

	mux.HandleFunc("/api/v1/nodes", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]interface{}{"nodes": s.nodes})
	})

	mux.HandleFunc("/api/v1/nodes/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/v1/nodes/")

		s.mu.Lock()
		defer s.mu.Unlock()

		if r.Method == http.MethodDelete {
			if _, ok := s.nodes[rest]; !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			delete(s.nodes, rest)
			fmt.Printf("DELETE %s\n", rest)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		id, op, ok := strings.Cut(rest, "/")
		if !ok || op != "rename" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		n, exists := s.nodes[id]
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Printf("RENAME %s: %s -> %s\n", id, n.Name, body.Name)
		n.Name = body.Name
		s.nodes[id] = n
		w.WriteHeader(http.StatusNoContent)
	})

	fmt.Printf("fakebackend listening on %s (%d nodes)\n", *addr, len(s.nodes))
	if err := http.ListenAndServe(*addr, mux); err != nil {
		fmt.Println(err)
	}
}
