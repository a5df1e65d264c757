package ttl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Port is one lv2:port node read back from a descriptor.
type Port struct {
	Index       int
	Classes     []string
	Symbol      string
	Name        string
	Designation string
	Properties  []string
	Unit        string
	Default     *float64
	Minimum     *float64
	Maximum     *float64
	ScalePoints []ScalePoint
}

// ScalePoint is a labelled value of a port.
type ScalePoint struct {
	Label string
	Value float64
}

// HasClass reports whether the port is typed with class.
func (p Port) HasClass(class string) bool {
	for _, c := range p.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// HasProperty reports whether the port lists the given lv2:portProperty.
func (p Port) HasProperty(prop string) bool {
	for _, c := range p.Properties {
		if c == prop {
			return true
		}
	}
	return false
}

// ReadPorts parses the lv2:port nodes of a descriptor written in the layout
// this package produces: one statement per line, blank nodes opened with
// "[" at the end of a line and closed with "] ;", "] ." or "] , [".
func ReadPorts(r io.Reader) ([]Port, error) {
	var (
		ports  []Port
		cur    *Port
		point  *ScalePoint
		stack  []string
		lineNo int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "@prefix") || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case line == "] , [":
			if len(stack) == 0 {
				return nil, fmt.Errorf("line %d: unbalanced bracket", lineNo)
			}
			kind := stack[len(stack)-1]
			closeNode(kind, &ports, &cur, &point)
			openNode(kind, cur, &cur, &point)
			continue

		case strings.HasPrefix(line, "]"):
			if len(stack) == 0 {
				return nil, fmt.Errorf("line %d: unbalanced bracket", lineNo)
			}
			closeNode(stack[len(stack)-1], &ports, &cur, &point)
			stack = stack[:len(stack)-1]
			continue

		case strings.HasSuffix(line, "["):
			kind := strings.TrimSpace(strings.TrimSuffix(line, "["))
			stack = append(stack, kind)
			openNode(kind, cur, &cur, &point)
			continue
		}

		pred, obj := splitStatement(line)
		switch {
		case point != nil:
			if err := point.set(pred, obj); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case cur != nil:
			if err := cur.set(pred, obj); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unterminated node %q", stack[len(stack)-1])
	}

	return ports, nil
}

func openNode(kind string, parent *Port, cur **Port, point **ScalePoint) {
	switch kind {
	case "lv2:port":
		*cur = &Port{}
	case "lv2:scalePoint":
		if parent != nil {
			*point = &ScalePoint{}
		}
	}
}

func closeNode(kind string, ports *[]Port, cur **Port, point **ScalePoint) {
	switch kind {
	case "lv2:port":
		if *cur != nil {
			*ports = append(*ports, **cur)
			*cur = nil
		}
	case "lv2:scalePoint":
		if *point != nil && *cur != nil {
			(*cur).ScalePoints = append((*cur).ScalePoints, **point)
			*point = nil
		}
	}
}

// splitStatement separates "pred obj ;" into its predicate and object text.
func splitStatement(line string) (string, string) {
	switch {
	case strings.HasSuffix(line, ";"):
		line = strings.TrimSuffix(line, ";")
	case strings.HasSuffix(line, " ."):
		line = strings.TrimSuffix(line, " .")
	}
	line = strings.TrimSpace(line)

	pred, obj, _ := strings.Cut(line, " ")
	return pred, strings.TrimSpace(obj)
}

func splitList(obj string) []string {
	parts := strings.Split(obj, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func unquote(obj string) string {
	return strings.TrimSuffix(strings.TrimPrefix(obj, `"`), `"`)
}

func parseFloat(obj string) (*float64, error) {
	v, err := strconv.ParseFloat(obj, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (p *Port) set(pred, obj string) error {
	var err error
	switch pred {
	case "a":
		p.Classes = append(p.Classes, splitList(obj)...)
	case "lv2:index":
		p.Index, err = strconv.Atoi(obj)
	case "lv2:symbol":
		p.Symbol = unquote(obj)
	case "lv2:name":
		p.Name = unquote(obj)
	case "lv2:designation":
		p.Designation = obj
	case "lv2:portProperty":
		p.Properties = append(p.Properties, splitList(obj)...)
	case "units:unit":
		p.Unit = obj
	case "lv2:default":
		p.Default, err = parseFloat(obj)
	case "lv2:minimum":
		p.Minimum, err = parseFloat(obj)
	case "lv2:maximum":
		p.Maximum, err = parseFloat(obj)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", pred, err)
	}
	return nil
}

func (s *ScalePoint) set(pred, obj string) error {
	switch pred {
	case "rdfs:label":
		s.Label = unquote(obj)
	case "rdf:value":
		v, err := strconv.ParseFloat(obj, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", pred, err)
		}
		s.Value = v
	}
	return nil
}
