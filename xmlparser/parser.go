package xmlparser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"langconv/database"
)

const (
	rootElement     = "sql_script"
	tableElement    = "tableview_name"
	datatypeElement = "native_datatype_element"
	columnElement   = "column_name"
)

// ErrMissingElement возвращается, если в документе нет обязательного элемента
var ErrMissingElement = errors.New("missing required element")

// MissingElementError указывает отсутствующий элемент
type MissingElementError struct {
	Element string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("%s <%s>", ErrMissingElement, e.Element)
}

func (e *MissingElementError) Is(target error) bool {
	return target == ErrMissingElement
}

// ParseDataClass читает описание таблицы из XML-файла (обычно data_class.xml)
func ParseDataClass(path string) (database.TableSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return database.TableSchema{}, err
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return database.TableSchema{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// capture собирает текст одного интересующего элемента вместе с потомками
type capture struct {
	name  string
	depth int
	text  strings.Builder
}

// Decode разбирает документ потоково. Колонки сопоставляются по позиции,
// лишние типы или имена отбрасываются.
func Decode(r io.Reader) (database.TableSchema, error) {
	dec := xml.NewDecoder(r)

	var (
		depth     int
		sawRoot   bool
		tableName *string
		dataTypes []string
		names     []string
		open      []*capture
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return database.TableSchema{}, fmt.Errorf("decode xml: %w", err)
		}

		switch se := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				if se.Name.Local != rootElement {
					return database.TableSchema{}, &MissingElementError{Element: rootElement}
				}
				sawRoot = true
				continue
			}
			switch se.Name.Local {
			case tableElement, datatypeElement, columnElement:
				open = append(open, &capture{name: se.Name.Local, depth: depth})
			}
		case xml.CharData:
			for _, c := range open {
				c.text.Write(se)
			}
		case xml.EndElement:
			if n := len(open); n > 0 && open[n-1].depth == depth {
				c := open[n-1]
				open = open[:n-1]
				value := strings.TrimSpace(c.text.String())
				switch c.name {
				case tableElement:
					if tableName == nil {
						tableName = &value
					}
				case datatypeElement:
					dataTypes = append(dataTypes, value)
				case columnElement:
					names = append(names, value)
				}
			}
			depth--
		}
	}

	if !sawRoot {
		return database.TableSchema{}, &MissingElementError{Element: rootElement}
	}
	if tableName == nil {
		return database.TableSchema{}, &MissingElementError{Element: tableElement}
	}

	t := database.TableSchema{Name: *tableName}
	for i := 0; i < len(dataTypes) && i < len(names); i++ {
		t.Columns = append(t.Columns, database.Column{
			NativeType: dataTypes[i],
			Name:       names[i],
		})
	}
	return t, nil
}
