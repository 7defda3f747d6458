package generate

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/project"
)

// State is one stage of a generation run.
type State string

const (
	StateInit                   State = "init"
	StateCreateSchema           State = "create_schema"
	StatePopulateCustomers      State = "populate_customers"
	StatePopulateProducts       State = "populate_products"
	StatePopulateInvoices       State = "populate_invoices"
	StatePopulateInvoiceDetails State = "populate_invoice_details"
	StateExport                 State = "export"
	StateDone                   State = "done"
	StateFailed                 State = "failed"
)

// Config carries everything a generation run needs. Seed zero means derive
// a seed from the clock; any other value makes the run reproducible.
type Config struct {
	DB        *gorm.DB
	Tree      *project.Tree
	ExportDir string
	Seed      int64
}

// Generator drives one run for one project: build the concrete tables,
// fill them according to the project's resolved settings, then export.
type Generator struct {
	db        *gorm.DB
	tree      *project.Tree
	exportDir string
	rng       *rand.Rand
	runID     string
	state     State

	counts counts

	customers [][]any
	products  [][]any
	invoices  []invoiceRow
	details   [][]any
}

// New validates the config and resolves the row counts up front, so a run
// that cannot succeed fails before any table is touched.
func New(cfg Config) (*Generator, error) {
	if cfg.DB == nil {
		return nil, errors.Wrap(ErrGeneration, "nil database handle")
	}
	if cfg.Tree == nil {
		return nil, errors.Wrap(ErrGeneration, "nil project tree")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		db:        cfg.DB,
		tree:      cfg.Tree,
		exportDir: cfg.ExportDir,
		rng:       rand.New(rand.NewSource(seed)),
		runID:     uuid.NewString(),
		state:     StateInit,
	}

	if err := g.resolveCounts(); err != nil {
		return nil, err
	}

	return g, nil
}

// State returns the stage the run is currently in.
func (g *Generator) State() State { return g.state }

// RunID returns the identifier logged with every step of this run.
func (g *Generator) RunID() string { return g.runID }

// Run executes the whole pipeline in order. The first failing step leaves
// the generator in StateFailed and its error carries ErrGeneration context
// where the failure is a settings problem rather than a database one.
func (g *Generator) Run(ctx context.Context) error {
	steps := []struct {
		state State
		fn    func(ctx context.Context) error
	}{
		{StateCreateSchema, g.createSchema},
		{StatePopulateCustomers, g.populateCustomers},
		{StatePopulateProducts, g.populateProducts},
		{StatePopulateInvoices, g.populateInvoices},
		{StatePopulateInvoiceDetails, g.populateInvoiceDetails},
		{StateExport, g.export},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			g.state = StateFailed
			return errors.Wrapf(err, "generation run %s interrupted", g.runID)
		}

		g.state = step.state
		log.Info().
			Str("run", g.runID).
			Uint64("project", g.tree.ID).
			Str("state", string(step.state)).
			Msg("generation step")

		if err := step.fn(ctx); err != nil {
			g.state = StateFailed
			log.Error().
				Err(err).
				Str("run", g.runID).
				Str("state", string(step.state)).
				Msg("generation step failed")
			return err
		}
	}

	g.state = StateDone
	log.Info().
		Str("run", g.runID).
		Uint64("project", g.tree.ID).
		Int("customers", len(g.customers)).
		Int("products", len(g.products)).
		Int("invoices", len(g.invoices)).
		Msg("generation complete")

	return nil
}
