package engine

import (
	"fmt"
	"strings"
	"sync"
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/go-remap/remap"
	"github.com/go-remap/remap/datasource/dsv"
	"github.com/go-remap/remap/datasource/file"
	"github.com/go-remap/remap/errors"
	"github.com/go-remap/remap/funcs"
	"github.com/go-remap/remap/logging"
	"github.com/go-remap/remap/stats"
	"github.com/go-remap/remap/template"
)

// MapperConf configures a Mapper
type MapperConf struct {
	Registry *funcs.Registry // Transform functions available to templates. Defaults to the builtins.
	Parser   *dsv.Parser     // Parser used to serialize output. Defaults to the comma-delimited Parser.
	Logger   *logging.Logger // Destination for pass logs. Defaults to an ErrorLevel stderr logger.
}

// Mapper is the stateful facade over the transform engine: it holds the
// current input Dataset and the output of the most recent pass, and runs
// templates against them. Passes are serialized by a mutex, but a Mapper
// is intended to be single-owner. A non-terminating transform function
// blocks the pass indefinitely - callers embedding untrusted templates
// should wrap Apply with their own timeout.
type Mapper struct {
	lock     sync.Mutex
	compiler *template.Compiler
	parser   *dsv.Parser
	logger   *logging.Logger
	stats    *stats.RunStatistics
	input    *remap.Dataset
	output   *remap.Dataset
}

// CreateMapper returns a new Mapper. A nil conf selects all defaults.
func CreateMapper(conf *MapperConf) *Mapper {
	if conf == nil {
		conf = &MapperConf{}
	}
	parser := conf.Parser
	if parser == nil {
		parser = dsv.CreateParser(nil)
	}
	logger := conf.Logger
	if logger == nil {
		logger = logging.CreateLogger(logging.ErrorLevel, nil)
	}
	return &Mapper{
		compiler: template.CreateCompiler(conf.Registry),
		parser:   parser,
		logger:   logger,
		stats:    stats.CreateRunStatistics(),
	}
}

// LoadData sets the current input Dataset. Any prior output is discarded,
// so a cascaded pass cannot reach across a LoadData call.
func (m *Mapper) LoadData(ds *remap.Dataset) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.input = ds
	m.output = nil
	m.logger.Logf(logging.InfoLevel, "loaded dataset with %d columns and %d rows (checksum %x)", ds.NumColumns(), ds.NumRows(), ds.Checksum())
}

// Apply compiles the raw template and runs one transform pass. With
// cascade false the pass reads the Dataset given to LoadData; with
// cascade true it reads the output of the immediately preceding pass,
// failing with a NoPriorOutputError if there is none. On success the
// result replaces the current output; on failure the prior output is
// left untouched.
func (m *Mapper) Apply(raw remap.RawTemplate, cascade bool) (*remap.Dataset, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	source := m.input
	if cascade {
		source = m.output
		if source == nil {
			return nil, errors.NoPriorOutputError{}
		}
	}
	if source == nil {
		return nil, fmt.Errorf("No input dataset has been loaded")
	}
	passID := "unknown"
	if id, err := uuid.NewV4(); err == nil {
		passID = id.String()
	}

	compiled, err := m.compiler.Compile(raw)
	if err != nil {
		m.logger.Logf(logging.ErrorLevel, "pass %s failed to compile template: %v", passID, err)
		return nil, err
	}
	start := time.Now()
	result, err := Apply(source, compiled)
	if err != nil {
		m.logger.Logf(logging.ErrorLevel, "pass %s failed: %v", passID, err)
		return nil, err
	}
	runtime := time.Since(start)
	m.stats.RecordPass(passID, start, runtime, int64(source.NumRows()))
	m.logger.Logf(logging.InfoLevel, "pass %s transformed %d rows into %d columns in %s", passID, source.NumRows(), result.NumColumns(), runtime)
	m.output = result
	return result, nil
}

// Output serializes the current output Dataset, header first, each line
// newline-terminated
func (m *Mapper) Output() (string, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.output == nil {
		return "", errors.NoPriorOutputError{}
	}
	var out strings.Builder
	if err := m.parser.Serialize(m.output, &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// SaveData writes the current output Dataset to the given path
func (m *Mapper) SaveData(path string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.output == nil {
		return errors.NoPriorOutputError{}
	}
	return file.SaveDataset(path, m.output, m.parser)
}

// GetRuntimeStatistics returns statistics about the passes run so far
func (m *Mapper) GetRuntimeStatistics() remap.RuntimeStatistics {
	return m.stats
}
