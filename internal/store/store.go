// Package store persists trajectory batches under a results directory:
// one sub-directory per run holding metadata.json and run.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/askarov/stdmap/internal/chirikov"
	"github.com/askarov/stdmap/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	K         float64   `json:"k"`
	Seed      int64     `json:"seed"`
	Steps     int       `json:"steps"`
	Sims      int       `json:"sims"`
	Timestamp time.Time `json:"timestamp"`
}

// Save writes one batch: metadata.json plus run.csv in long form
// (traj, step, I, theta).
func (s *Store) Save(b *sim.Batch) (string, error) {
	runID := fmt.Sprintf("K%g_%d", b.K, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		K:         b.K,
		Seed:      b.Seed,
		Steps:     b.Steps,
		Sims:      b.Sims(),
		Timestamp: time.Now(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "run.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"traj", "step", "I", "theta"}); err != nil {
		return "", err
	}
	for k, tr := range b.Trajectories {
		for n := range tr.I {
			row := []string{
				strconv.Itoa(k),
				strconv.Itoa(n),
				strconv.FormatFloat(tr.I[n], 'f', 9, 64),
				strconv.FormatFloat(tr.Theta[n], 'f', 9, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadBatch reconstructs the batch saved under runID.
func (s *Store) LoadBatch(runID string) (*sim.Batch, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "run.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("run %s has no samples", runID)
	}

	batch := &sim.Batch{
		K:            meta.K,
		Seed:         meta.Seed,
		Steps:        meta.Steps,
		Trajectories: make([]chirikov.Trajectory, meta.Sims),
	}
	for k := range batch.Trajectories {
		batch.Trajectories[k] = chirikov.Trajectory{
			I:     make([]float64, 0, meta.Steps+1),
			Theta: make([]float64, 0, meta.Steps+1),
		}
	}

	for _, record := range records[1:] {
		if len(record) != 4 {
			continue
		}
		traj, err := strconv.Atoi(record[0])
		if err != nil || traj < 0 || traj >= meta.Sims {
			return nil, fmt.Errorf("run %s has a malformed trajectory index %q", runID, record[0])
		}
		iVal, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, err
		}
		thetaVal, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, err
		}
		tr := &batch.Trajectories[traj]
		tr.I = append(tr.I, iVal)
		tr.Theta = append(tr.Theta, thetaVal)
	}

	return batch, nil
}
