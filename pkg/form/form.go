package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Form is a titled, ordered list of questions.
type Form struct {
	Title        string               `mapstructure:"title"`
	Instructions *domain.Instructions `mapstructure:"instructions"`
	Questions    []Question           `mapstructure:"questions"`
}

// Question describes one prompt.
type Question struct {
	ID        string            `mapstructure:"id"`
	Kind      domain.PromptKind `mapstructure:"kind"`
	Message   string            `mapstructure:"message"`
	Separator string            `mapstructure:"separator"`
	Mode      domain.BoolMode   `mapstructure:"mode"`
	Count     domain.Count      `mapstructure:"count"`
	Range     string            `mapstructure:"range"`
	Float     bool              `mapstructure:"float"`
}

var ErrInvalidForm = errors.New("invalid form")

// LoadFile reads a form from path. Files ending in .json are decoded as JSON,
// everything else as YAML.
func LoadFile(path string) (*Form, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open form: %w", err)
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var raw map[string]any
		if err := json.NewDecoder(f).Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return Decode(raw)
	}
	return Load(f)
}

// Load reads a YAML form.
func Load(r io.Reader) (*Form, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidForm)
		}
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}
	return Decode(raw)
}

// Decode builds a Form from a generic map (as produced by YAML or JSON decoders)
// and validates it.
func Decode(raw map[string]any) (*Form, error) {
	var f Form
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			countFromNumber,
			mapstructure.TextUnmarshallerHookFunc(),
		),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &f,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// countFromNumber lets "count: 2" mean an exact count.
func countFromNumber(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(domain.Count{}) {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return domain.Exactly(int(reflect.ValueOf(data).Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return domain.Exactly(int(reflect.ValueOf(data).Uint())), nil
	case reflect.Float32, reflect.Float64:
		v := reflect.ValueOf(data).Float()
		if v != float64(int(v)) {
			return nil, fmt.Errorf("count must be a whole number, got %v", v)
		}
		return domain.Exactly(int(v)), nil
	}
	return data, nil
}

// Validate checks ids, kinds and constraints without prompting.
func (f *Form) Validate() error {
	if len(f.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidForm)
	}

	var problems []string
	seen := make(map[string]bool)
	for i, q := range f.Questions {
		where := fmt.Sprintf("question %d", i+1)
		if q.ID != "" {
			where = fmt.Sprintf("question '%s'", q.ID)
		}

		switch {
		case q.ID == "":
			problems = append(problems, where+": missing id")
		case seen[q.ID]:
			problems = append(problems, where+": duplicate id")
		}
		seen[q.ID] = true

		if q.Message == "" {
			problems = append(problems, where+": missing message")
		}

		switch q.Kind {
		case domain.KindString, domain.KindBool, domain.KindNumber:
		case domain.KindNumberRange:
			if q.Range == "" {
				problems = append(problems, where+": number_range needs a range")
			}
		case domain.KindMultiString, domain.KindMultiNumber:
			if q.Separator == "" {
				problems = append(problems, where+": missing separator")
			}
		default:
			problems = append(problems, fmt.Sprintf("%s: unknown kind '%s'", where, q.Kind))
		}

		if err := q.Count.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", where, err))
		}
		if err := q.checkRange(); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", where, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: found %d errors:\n- %s", ErrInvalidForm, len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}

func (q Question) checkRange() error {
	if q.Float {
		_, err := parseRange[float64](q.Range)
		return err
	}
	_, err := parseRange[int64](q.Range)
	return err
}
