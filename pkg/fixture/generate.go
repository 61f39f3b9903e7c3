package fixture

import "github.com/google/uuid"

// Result describes a written fixture file
type Result struct {
	Path string
	Rows int
}

// Generate writes the fixture file described by cfg.
// The configuration is validated before the file is created, so an invalid
// configuration never leaves a file behind. On a write error the file is
// closed and left incomplete.
func Generate(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	w := NewWriter(cfg.Dir, cfg.Suffix)
	w.logger = w.logger.With().Str("run", uuid.NewString()).Logger()
	w.logger.Info().Msgf("writing %d rows to %s", cfg.Count, w.FileName())

	if err := w.Open(); err != nil {
		return Result{Path: w.FileName()}, err
	}
	for i := 1; i <= cfg.Count; i++ {
		if err := w.Write(NewRow(i)); err != nil {
			w.logger.Error().Msgf("stopped after %d rows: %s", w.Rows(), err)
			_ = w.Close()
			return Result{Path: w.FileName(), Rows: w.Rows()}, err
		}
	}
	res := Result{Path: w.FileName(), Rows: w.Rows()}
	if err := w.Close(); err != nil {
		return res, err
	}

	w.logger.Info().Msgf("wrote %d rows to %s", res.Rows, res.Path)
	return res, nil
}
