package careerbooster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCoursesDecodesElements(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/courses" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("category"); got != "backend" {
			t.Errorf("unexpected category: %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[
			{"id":"c1","name":"Go Basics","provider":"Coursera","category":"backend","url":"https://example.com/go","extra":"ignored"},
			{"id":"c2","name":"SQL Deep Dive","provider":"Udemy","category":"backend"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	courses, err := client.Courses(context.Background(), "backend")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if courses.Len() != 2 {
		t.Fatalf("expected 2 courses, got %d", courses.Len())
	}
	if courses.Items[0].Name != "Go Basics" || courses.Items[0].Provider != "Coursera" {
		t.Fatalf("unexpected first course: %+v", courses.Items[0])
	}
	if courses.Items[1].ID != "c2" {
		t.Fatalf("unexpected second course: %+v", courses.Items[1])
	}
}

func TestCoursesOmitsEmptyCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query string, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"elements":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	courses, err := client.Courses(context.Background(), "")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if courses.Len() != 0 {
		t.Fatalf("expected no courses, got %d", courses.Len())
	}
}
