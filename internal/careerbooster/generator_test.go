package careerbooster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/careerbooster/cb-cli/internal/cvdraft"
)

func sampleDraft() *cvdraft.Draft {
	draft := cvdraft.New()
	draft.SetField("personalInfo", "name", "Ada Lovelace")
	draft.SetField("personalInfo", "email", "ada@example.com")
	draft.SetField("personalInfo", "summary", "First programmer")
	draft.AppendString(cvdraft.Skills, "Go")

	return draft
}

func TestGenerateAbortsWhenCreateFails(t *testing.T) {
	var exportCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/export/") {
			atomic.AddInt32(&exportCalls, 1)
			w.Write([]byte("%PDF-1.4"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("db down"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok1")

	id, doc, err := client.Generate(context.Background(), sampleDraft(), "")
	if err == nil {
		t.Fatal("expected an error when the create step fails")
	}
	if id != "" || doc != nil {
		t.Fatalf("expected no id and no document, got %q / %d bytes", id, len(doc))
	}

	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "db down") {
		t.Fatalf("error should carry status and body: %v", err)
	}

	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("expected ServerError, got %T: %v", err, err)
	}

	if n := atomic.LoadInt32(&exportCalls); n != 0 {
		t.Fatalf("export must never run after a failed create, got %d calls", n)
	}
}

func TestGenerateTwoStep(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4 fake")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/cv-generator":
			body, _ := io.ReadAll(r.Body)

			var payload map[string]any
			if err := json.Unmarshal(body, &payload); err != nil {
				t.Fatalf("draft body is not valid JSON: %v", err)
			}
			if _, ok := payload["personalInfo"]; !ok {
				t.Error("draft body is missing personalInfo")
			}
			if payload["summary"] != "First programmer" {
				t.Errorf("summary must be a top level field, got %v", payload["summary"])
			}
			if info, ok := payload["personalInfo"].(map[string]any); ok {
				if _, present := info["summary"]; present {
					t.Error("summary must not appear inside personalInfo")
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"rec-42"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/cv-generator/rec-42/export/pdf":
			if got := r.URL.Query().Get("template"); got != "modern" {
				t.Errorf("unexpected template: %q", got)
			}
			w.Write(pdfBytes)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok1")

	id, doc, err := client.Generate(context.Background(), sampleDraft(), "")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if id != "rec-42" {
		t.Fatalf("unexpected id: %q", id)
	}
	if !bytes.Equal(doc, pdfBytes) {
		t.Fatalf("unexpected document bytes: %q", doc)
	}
}

func TestGenerateKeepsIDWhenExportFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"id":"rec-7"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("render crashed"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok1")

	id, doc, err := client.Generate(context.Background(), sampleDraft(), "")
	if err == nil {
		t.Fatal("expected an error when the export step fails")
	}
	if id != "rec-7" {
		t.Fatalf("the created record id must survive an export failure, got %q", id)
	}
	if doc != nil {
		t.Fatalf("expected no document, got %d bytes", len(doc))
	}
}

func TestExportPDFIsRepeatable(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4 same bytes")
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write(pdfBytes)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok1")

	first, err := client.ExportPDF(context.Background(), "rec-1", "classic")
	if err != nil {
		t.Fatalf("first export: %v", err)
	}
	second, err := client.ExportPDF(context.Background(), "rec-1", "classic")
	if err != nil {
		t.Fatalf("second export: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("repeated exports must return the same document")
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("expected two export requests, got %d", n)
	}
}

func TestCreateCVRejectsEmptyID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok1")

	if _, err := client.CreateCV(context.Background(), sampleDraft()); err == nil {
		t.Fatal("expected an error when the server returns no id")
	}
}
