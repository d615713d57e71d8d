// Package export converts structs to and from delimited text using
// reflection. It walks a struct's exported fields, recursing one level into
// nested structs, and supports projecting the emitted fields by name or by
// position in include or exclude mode.
package export

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"
	"time"

	"conectone/internal/errors"
)

// Sentinel errors for positional parsing.
var (
	// ErrFieldCount is returned when Unmarshal receives fewer values than
	// the destination struct has fields.
	ErrFieldCount = errors.New("export: not enough values for struct fields")

	// ErrCoerce is returned when a value cannot be converted to the
	// destination field's type.
	ErrCoerce = errors.New("export: cannot coerce value")
)

// asciiSubstitutions maps a fixed set of accented letters to ASCII
// equivalents so exported files open cleanly in legacy spreadsheet tools.
var asciiSubstitutions = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ä", "a", "ã", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "ö", "o", "õ", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c", "ñ", "n",
	"Á", "A", "À", "A", "Â", "A", "Ä", "A", "Ã", "A",
	"É", "E", "È", "E", "Ê", "E", "Ë", "E",
	"Í", "I", "Ì", "I", "Î", "I", "Ï", "I",
	"Ó", "O", "Ò", "O", "Ô", "O", "Ö", "O", "Õ", "O",
	"Ú", "U", "Ù", "U", "Û", "U", "Ü", "U",
	"Ç", "C", "Ñ", "N",
)

// Option narrows which fields Marshal and Headers emit. Field names refer to
// top-level struct fields; indexes refer to top-level field positions before
// nested flattening.
type Option func(*projection)

type projection struct {
	names   []string
	indexes []int
	ignore  bool
	byName  bool
	byIndex bool
}

// IncludeFields emits only the named top-level fields.
func IncludeFields(names ...string) Option {
	return func(p *projection) {
		p.names = names
		p.byName = true
		p.ignore = false
	}
}

// ExcludeFields emits every field except the named ones.
func ExcludeFields(names ...string) Option {
	return func(p *projection) {
		p.names = names
		p.byName = true
		p.ignore = true
	}
}

// IncludeIndexes emits only the fields at the given positions.
func IncludeIndexes(indexes ...int) Option {
	return func(p *projection) {
		p.indexes = indexes
		p.byIndex = true
		p.ignore = false
	}
}

// ExcludeIndexes emits every field except those at the given positions.
func ExcludeIndexes(indexes ...int) Option {
	return func(p *projection) {
		p.indexes = indexes
		p.byIndex = true
		p.ignore = true
	}
}

// Marshal renders v's exported fields as one comma-separated line. Values
// containing commas or quotes are quoted with doubled inner quotes, and a
// fixed set of accented letters is replaced with ASCII equivalents. Fields
// that are themselves structs are flattened one level deep.
func Marshal(v any, opts ...Option) (string, error) {
	rv, err := structValue(v)
	if err != nil {
		return "", err
	}

	fields, err := selectFields(rv.Type(), opts)
	if err != nil {
		return "", err
	}

	cells := make([]string, 0, len(fields))
	for _, i := range fields {
		fv := rv.Field(i)
		if nt, ok := nestedStructType(fv.Type()); ok {
			// A nil nested pointer still spans the full column count so
			// rows stay positionally aligned with the headers.
			if fv.Kind() == reflect.Pointer && fv.IsNil() {
				for j := range nt.NumField() {
					if nt.Field(j).IsExported() {
						cells = append(cells, "")
					}
				}

				continue
			}

			nested := fv
			if nested.Kind() == reflect.Pointer {
				nested = nested.Elem()
			}
			for j := range nt.NumField() {
				if !nt.Field(j).IsExported() {
					continue
				}
				cell, err := stringify(nested.Field(j))
				if err != nil {
					return "", err
				}
				cells = append(cells, escape(cell))
			}

			continue
		}

		cell, err := stringify(fv)
		if err != nil {
			return "", err
		}
		cells = append(cells, escape(cell))
	}

	return strings.Join(cells, ","), nil
}

// Headers renders the column header line for v, mirroring the traversal
// Marshal performs so the two lines always have the same arity.
func Headers(v any, opts ...Option) (string, error) {
	rv, err := structValue(v)
	if err != nil {
		return "", err
	}

	rt := rv.Type()
	fields, err := selectFields(rt, opts)
	if err != nil {
		return "", err
	}

	cells := make([]string, 0, len(fields))
	for _, i := range fields {
		sf := rt.Field(i)
		if nt, ok := nestedStructType(sf.Type); ok {
			for j := range nt.NumField() {
				if !nt.Field(j).IsExported() {
					continue
				}
				cells = append(cells, escape(sf.Name+"."+nt.Field(j).Name))
			}

			continue
		}

		cells = append(cells, escape(sf.Name))
	}

	return strings.Join(cells, ","), nil
}

// Unmarshal assigns values positionally to v's exported fields, coercing
// each string to the field's declared type. v must be a non-nil pointer to
// a struct. Nested struct fields consume their own field count in order.
// Returns ErrFieldCount when values is too short and ErrCoerce when a value
// cannot be converted.
func Unmarshal(values []string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("export: destination must be a non-nil struct pointer")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.New("export: destination must point to a struct")
	}

	_, err := assign(values, rv)

	return err
}

// Document renders a slice of structs as a full delimited document: one
// header line followed by one line per element.
func Document(rows any, opts ...Option) ([]byte, error) {
	rv := reflect.ValueOf(rows)
	if rv.Kind() != reflect.Slice {
		return nil, errors.New("export: rows must be a slice")
	}

	var b strings.Builder
	for i := range rv.Len() {
		line, err := Marshal(rv.Index(i).Interface(), opts...)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			header, err := Headers(rv.Index(i).Interface(), opts...)
			if err != nil {
				return nil, err
			}
			b.WriteString(header)
			b.WriteString("\n")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func structValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, errors.New("export: value is a nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, errors.Errorf("export: expected struct, got %s", rv.Kind())
	}

	return rv, nil
}

// selectFields resolves the projection to a list of top-level field indexes
// in declaration order, skipping unexported fields.
func selectFields(rt reflect.Type, opts []Option) ([]int, error) {
	var p projection
	for _, opt := range opts {
		opt(&p)
	}

	exported := make([]int, 0, rt.NumField())
	for i := range rt.NumField() {
		if rt.Field(i).IsExported() {
			exported = append(exported, i)
		}
	}

	if p.byName {
		known := make(map[string]bool, len(p.names))
		for _, name := range p.names {
			if _, ok := rt.FieldByName(name); !ok {
				return nil, errors.Errorf("export: no field named %q in %s", name, rt.Name())
			}
			known[name] = true
		}

		kept := exported[:0]
		for _, i := range exported {
			if known[rt.Field(i).Name] != p.ignore {
				kept = append(kept, i)
			}
		}

		return kept, nil
	}

	if p.byIndex {
		known := make(map[int]bool, len(p.indexes))
		for _, idx := range p.indexes {
			if idx < 0 || idx >= len(exported) {
				return nil, errors.Errorf("export: field index %d out of range [0,%d)", idx, len(exported))
			}
			known[idx] = true
		}

		kept := make([]int, 0, len(exported))
		for pos, i := range exported {
			if known[pos] != p.ignore {
				kept = append(kept, i)
			}
		}

		return kept, nil
	}

	return exported, nil
}

var (
	timeType          = reflect.TypeFor[time.Time]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// nestedStructType reports whether fields of type t flatten into nested
// columns. The decision is made on the type alone so Marshal, Headers and
// Unmarshal always agree on a row's column count. time.Time and types with
// their own text encoding stay scalar.
func nestedStructType(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t == timeType || t.Implements(textMarshalerType) {
		return nil, false
	}

	return t, true
}

func stringify(fv reflect.Value) (string, error) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return "", nil
		}
		fv = fv.Elem()
	}

	switch v := fv.Interface().(type) {
	case time.Time:
		return v.Format(time.RFC3339), nil
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return "", errors.Wrap(err, "export: marshal text")
		}

		return string(text), nil
	}

	switch fv.Kind() {
	case reflect.String:
		return asciiSubstitutions.Replace(fv.String()), nil
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(fv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(fv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'f', -1, 64), nil
	default:
		return "", errors.Errorf("export: unsupported field kind %s", fv.Kind())
	}
}

// assign consumes values positionally into the struct rv points at and
// returns how many it used.
func assign(values []string, rv reflect.Value) (int, error) {
	rt := rv.Type()
	used := 0

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fv := rv.Field(i)
		if _, ok := nestedStructType(sf.Type); ok {
			n, err := assign(values[used:], ensureAllocated(fv))
			if err != nil {
				return used, err
			}
			used += n

			continue
		}

		if used >= len(values) {
			return used, errors.Wrapf(ErrFieldCount, "field %s at position %d", sf.Name, used)
		}

		if err := coerce(values[used], ensureAllocated(fv)); err != nil {
			return used, errors.Wrapf(err, "field %s", sf.Name)
		}
		used++
	}

	return used, nil
}

// ensureAllocated makes pointer fields settable, allocating nil pointers.
func ensureAllocated(fv reflect.Value) reflect.Value {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() && fv.CanSet() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}

		return fv.Elem()
	}

	return fv
}

func coerce(value string, fv reflect.Value) error {
	switch target := fv.Addr().Interface().(type) {
	case *time.Time:
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			t, err = time.Parse(time.DateOnly, value)
		}
		if err != nil {
			return errors.Wrapf(ErrCoerce, "%q as time: %v", value, err)
		}
		*target = t

		return nil
	case encoding.TextUnmarshaler:
		if err := target.UnmarshalText([]byte(value)); err != nil {
			return errors.Wrapf(ErrCoerce, "%q as %s: %v", value, fv.Type(), err)
		}

		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(ErrCoerce, "%q as bool: %v", value, err)
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrCoerce, "%q as int: %v", value, err)
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrCoerce, "%q as uint: %v", value, err)
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrapf(ErrCoerce, "%q as float: %v", value, err)
		}
		fv.SetFloat(f)
	default:
		return errors.Errorf("export: unsupported field kind %s", fv.Kind())
	}

	return nil
}

// escape quotes a cell when it contains the delimiter or a quote, doubling
// inner quotes.
func escape(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}

	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
