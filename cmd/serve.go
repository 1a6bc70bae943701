package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lriva/percgrid/analysis"
	"github.com/lriva/percgrid/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves analysis over HTTP",
	Long:  `Serves analysis over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.AnalyzeRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}
	if input.Path == "" {
		writeError(w, 400, "Missing path")
		return
	}

	res, err := analysis.Run(input.Path)
	if err == analysis.ErrNoBeats {
		writeError(w, 404, fmt.Sprintf("Found no beats on file %v.", input.Path))
		return
	}
	if err != nil {
		writeError(w, 422, err.Error())
		return
	}

	response := model.AnalyzeResponse{
		Filename:       res.Filename,
		NumInstruments: len(res.Timeline.Order),
		MaxTrackLen:    res.Meta.MaxTrackLen,
		TicksPerBeat:   res.Meta.TicksPerBeat,
		TimeSignature:  fmt.Sprintf("%v/%v", res.Meta.Numerator, res.Meta.Denominator),
		ArithmeticMean: res.Summary.Arithmetic.Value,
		BinaryMean:     res.Summary.Binary.Value,
	}
	for _, g := range res.Grids {
		response.Instruments = append(response.Instruments, model.InstrumentResult{
			Note:      g.Note,
			Name:      g.Name,
			Tubs:      g.Grid.Symbols,
			StartSlot: g.Grid.StartSlot,
			EndSlot:   g.Grid.EndSlot,
		})
	}
	json.NewEncoder(w).Encode(response)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
