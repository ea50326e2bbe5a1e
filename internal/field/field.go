package field

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-pd0/internal/binary"
)

var (
	// ErrWidth is returned when a field's width does not fit its target.
	ErrWidth = errors.New("field width does not match target")

	// ErrTarget is returned when a field reference has an unsupported type.
	ErrTarget = errors.New("unsupported field target")

	// ErrUnknownField is returned by Value for a name not in the table.
	ErrUnknownField = errors.New("unknown field")
)

// Kind is the element type of a decoded field.
type Kind uint8

const (
	Uint  Kind = iota // unsigned little-endian integer
	Int               // two's-complement little-endian integer
	Bytes             // raw bytes kept verbatim
)

func (k Kind) String() string {
	switch k {
	case Uint:
		return "uint"
	case Int:
		return "int"
	case Bytes:
		return "bytes"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Field describes one fixed-width entry of a record layout. Ref returns a
// pointer into the record: *uint8, *uint16, *uint32, *uint64, *int16 or
// *[]byte. Fields with Decoded false are always kept as raw bytes.
type Field[T any] struct {
	Name    string
	Width   int
	Kind    Kind
	Decoded bool
	Ref     func(*T) any
}

// Size returns the number of bytes the table occupies.
func Size[T any](table []Field[T]) int {
	n := 0
	for _, f := range table {
		n += f.Width
	}
	return n
}

// Decode reads table from r into dst in order, folding every byte into sum.
func Decode[T any](r *binary.Reader, table []Field[T], dst *T, sum binary.Sum16) (binary.Sum16, error) {
	for _, f := range table {
		raw, err := r.ReadBytes(f.Width)
		if err != nil {
			return sum, fmt.Errorf("field %q: %w", f.Name, err)
		}
		sum = sum.Add(raw)
		if err := f.set(dst, raw, r); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// Encode writes the fields of src in table order.
func Encode[T any](w *binary.Writer, table []Field[T], src *T) error {
	for _, f := range table {
		if err := f.put(w, src); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the numeric value of the named field of rec.
func Value[T any](table []Field[T], rec *T, name string) (float64, error) {
	for _, f := range table {
		if f.Name != name {
			continue
		}
		switch p := f.Ref(rec).(type) {
		case *uint8:
			return float64(*p), nil
		case *uint16:
			return float64(*p), nil
		case *uint32:
			return float64(*p), nil
		case *uint64:
			return float64(*p), nil
		case *int16:
			return float64(*p), nil
		default:
			return 0, fmt.Errorf("field %q is %s: %w", name, f.Kind, ErrTarget)
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownField)
}

// Names returns the field names of table in order.
func Names[T any](table []Field[T]) []string {
	out := make([]string, len(table))
	for i, f := range table {
		out[i] = f.Name
	}
	return out
}

func (f Field[T]) set(dst *T, raw []byte, r *binary.Reader) error {
	ref := f.Ref(dst)
	if !f.Decoded || f.Kind == Bytes {
		p, ok := ref.(*[]byte)
		if !ok {
			return fmt.Errorf("field %q: raw field needs *[]byte, got %T: %w", f.Name, ref, ErrTarget)
		}
		*p = append([]byte(nil), raw...)
		return nil
	}

	order := r.Order()
	switch p := ref.(type) {
	case *uint8:
		if f.Width != 1 {
			return f.widthErr(1)
		}
		*p = raw[0]
	case *uint16:
		if f.Width != 2 {
			return f.widthErr(2)
		}
		*p = order.Uint16(raw)
	case *int16:
		if f.Width != 2 {
			return f.widthErr(2)
		}
		*p = int16(order.Uint16(raw))
	case *uint32:
		if f.Width != 4 {
			return f.widthErr(4)
		}
		*p = order.Uint32(raw)
	case *uint64:
		if f.Width != 8 {
			return f.widthErr(8)
		}
		*p = order.Uint64(raw)
	default:
		return fmt.Errorf("field %q: %T: %w", f.Name, ref, ErrTarget)
	}
	return nil
}

func (f Field[T]) put(w *binary.Writer, src *T) error {
	ref := f.Ref(src)
	var err error
	switch p := ref.(type) {
	case *[]byte:
		switch len(*p) {
		case f.Width:
			err = w.WriteBytes(*p)
		case 0:
			err = w.WriteBytes(make([]byte, f.Width))
		default:
			return fmt.Errorf("field %q holds %d bytes, want %d: %w", f.Name, len(*p), f.Width, ErrWidth)
		}
	case *uint8:
		err = w.WriteUint8(*p)
	case *uint16:
		err = w.WriteUint16(*p)
	case *int16:
		err = w.WriteInt16(*p)
	case *uint32:
		err = w.WriteUint32(*p)
	case *uint64:
		err = w.WriteUint64(*p)
	default:
		return fmt.Errorf("field %q: %T: %w", f.Name, ref, ErrTarget)
	}
	if err != nil {
		return fmt.Errorf("field %q: %w", f.Name, err)
	}
	return nil
}

func (f Field[T]) widthErr(want int) error {
	return fmt.Errorf("field %q is %d bytes, target needs %d: %w", f.Name, f.Width, want, ErrWidth)
}
