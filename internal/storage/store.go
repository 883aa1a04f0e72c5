package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/qgpscan/internal/thermo"
	"github.com/san-kum/qgpscan/internal/threshold"
)

const (
	metadataFile = "metadata.json"
	resultsFile  = "results.csv"
)

// ErrRunNotFound indicates no run directory with the given id.
var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) BaseDir() string { return s.baseDir }

// TransitionSummary is the persisted form of a threshold.Transition.
type TransitionSummary struct {
	Found     bool    `json:"found"`
	Energy    float64 `json:"energy,omitempty"`
	Low       float64 `json:"low"`
	High      float64 `json:"high"`
	RatioLow  float64 `json:"ratio_low"`
	RatioHigh float64 `json:"ratio_high"`
}

func Summarize(t threshold.Transition) *TransitionSummary {
	return &TransitionSummary{
		Found:     t.Found(),
		Energy:    t.Energy,
		Low:       t.Low,
		High:      t.High,
		RatioLow:  t.RatioLow,
		RatioHigh: t.RatioHigh,
	}
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Command    string             `json:"command"`
	Timestamp  time.Time          `json:"timestamp"`
	Constants  thermo.ConstantSet `json:"constants"`
	Points     int                `json:"points"`
	Transition *TransitionSummary `json:"transition,omitempty"`
}

// Save writes metadata.json and results.csv under a new run directory.
func (s *Store) Save(command string, constants thermo.ConstantSet, results []threshold.Result, transition *TransitionSummary) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", command, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Command:    command,
		Timestamp:  now,
		Constants:  constants,
		Points:     len(results),
		Transition: transition,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, resultsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeFullResults(csvFile, results); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metadataFile))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadResults reads back the results.csv of a run.
func (s *Store) LoadResults(runID string) ([]threshold.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, resultsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []threshold.Result{}, nil
	}

	results := make([]threshold.Result, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(fullHeader) {
			return nil, fmt.Errorf("%s line %d: expected %d fields, got %d", resultsFile, i+2, len(fullHeader), len(record))
		}
		vals := make([]float64, 6)
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", resultsFile, i+2, err)
			}
			vals[j] = v
		}
		var phase thermo.Phase
		if err := phase.UnmarshalText([]byte(record[6])); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", resultsFile, i+2, err)
		}
		results = append(results, threshold.Result{
			Energy:        vals[0],
			Inelasticity:  vals[1],
			Participants:  vals[2],
			EnergyDensity: vals[3],
			Temperature:   vals[4],
			EntropyRatio:  vals[5],
			Phase:         phase,
		})
	}

	return results, nil
}
