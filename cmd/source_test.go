package cmd

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/etnz/reconcile"
)

func TestOpenSource_URL(t *testing.T) {
	chart, err := os.ReadFile(oldFixture)
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/charts/jake.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, string(chart))
	}))
	defer srv.Close()

	r, err := CompareFiles(reconcile.DefaultSelectors, srv.URL+"/charts/jake.json", newFixture)
	if err != nil {
		t.Fatalf("CompareFiles() error = %v", err)
	}
	if r.Len() != 8 {
		t.Errorf("CompareFiles() has %d rows want 8", r.Len())
	}

	_, err = CompareFiles(reconcile.DefaultSelectors, srv.URL+"/charts/kendall.json", newFixture)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("CompareFiles() error = %v want a 404", err)
	}
}
