package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/trumpetlab/arranger/catalog"
	"github.com/trumpetlab/arranger/db"
	"github.com/trumpetlab/arranger/midi"
	"github.com/trumpetlab/arranger/model"
	"github.com/trumpetlab/arranger/util"
)

var cat model.Catalog
var catMu sync.Mutex
var saveDebounced func(func())

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves arrangements",
	Long:  `serves arrangements`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func handleList(w http.ResponseWriter, r *http.Request) {
	catMu.Lock()
	entries := catalog.Entries(cat)
	catMu.Unlock()

	json.NewEncoder(w).Encode(entries)
}

func handleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	catMu.Lock()
	entry, ok := cat[id]
	catMu.Unlock()

	if !ok && db.Enabled() {
		// catalog misses happen when another instance did the arranging
		dbEntry, err := db.GetArrangement(id)
		if err == nil {
			entry, ok = dbEntry, true
		}
	}

	if !ok {
		writeError(w, 404, "No arrangement with id "+id)
		return
	}
	json.NewEncoder(w).Encode(entry)
}

// persistCatalog snapshots the catalog under the lock and writes the
// snapshot out. Called through the debouncer so upload bursts only cost
// one write.
func persistCatalog() {
	catMu.Lock()
	snapshot := make(model.Catalog, len(cat))
	for id, entry := range cat {
		snapshot[id] = entry
	}
	catMu.Unlock()

	catalog.Save(snapshot)
}

func handleArrange(w http.ResponseWriter, r *http.Request) {
	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body: "+err.Error())
		return
	}

	s, err := midi.ReadMidi(bytes.NewReader(reqBody))
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = "untitled"
	}

	entry, tiers, err := processSong(s, title)
	if err != nil {
		fmt.Println("Could not arrange upload: " + err.Error())
		writeError(w, 500, err.Error())
		return
	}

	catMu.Lock()
	cat[entry.Id] = entry
	catMu.Unlock()
	saveDebounced(persistCatalog)

	if db.Enabled() {
		db.PutArrangement(entry)
	}

	json.NewEncoder(w).Encode(model.ArrangeResponse{
		Id:       entry.Id,
		Title:    entry.Title,
		Metadata: entry.Metadata,
		Tiers:    tiers,
	})
}

func ensureOutputDirs() {
	for _, d := range []string{util.GetMidiDir(), util.GetBackingDir()} {
		if err := os.MkdirAll(d, 0777); err != nil {
			panic("Could not create output dir: " + err.Error())
		}
	}
}

func serve() {
	ensureOutputDirs()
	cat = catalog.LoadOrEmpty()
	saveDebounced = debounce.New(2 * time.Second)

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/arrangements", handleList).Methods("GET")
	router.HandleFunc("/arrangements/{id}", handleGet).Methods("GET")
	router.HandleFunc("/arrange", handleArrange).Methods("POST")
	log.Fatal(http.ListenAndServe(":8080", cors.Default().Handler(router)))
}
