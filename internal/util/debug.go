package util

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/disiqueira/gotree/v3"

	"github.com/pycraft/pycraft/nodes"
)

var nodeType = reflect.TypeOf((*nodes.Node)(nil)).Elem()

// DebugTree returns a string representation of the given node.
// This is useful for debugging purposes, and will pretty print
// the structure of a node in human readable form: one tree entry per node,
// labelled with its kind and scalar fields, with child nodes grouped under
// the name of the field that holds them.
//
// Do Not Use: This function is only for debugging purposes.
func DebugTree(node nodes.Node) string {
	return debugTree(node).Print()
}

// DebugForest renders every top-level node under a single root.
func DebugForest(label string, ns []nodes.Node) string {
	root := gotree.New(label)
	for _, n := range ns {
		root.AddTree(debugTree(n))
	}
	return root.Print()
}

func debugTree(node nodes.Node) gotree.Tree {
	v := reflect.ValueOf(node)
	if node == nil || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return gotree.New("nil")
	}
	v = reflect.Indirect(v)
	t := v.Type()
	if t.Kind() != reflect.Struct {
		return gotree.New(t.String())
	}

	var scalars []string
	var children []gotree.Tree
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)

		switch {
		case field.Type.Implements(nodeType):
			if fv.IsNil() {
				continue
			}
			group := gotree.New(field.Name)
			group.AddTree(debugTree(fv.Interface().(nodes.Node)))
			children = append(children, group)
		case fv.Kind() == reflect.Slice && field.Type.Elem().Implements(nodeType):
			if fv.Len() == 0 {
				continue
			}
			group := gotree.New(field.Name)
			for j := 0; j < fv.Len(); j++ {
				elem := fv.Index(j)
				if elem.IsNil() {
					group.Add("nil")
					continue
				}
				group.AddTree(debugTree(elem.Interface().(nodes.Node)))
			}
			children = append(children, group)
		default:
			scalars = append(scalars, field.Name+"="+scalar(fv))
		}
	}

	label := t.Name()
	if len(scalars) > 0 {
		label += " " + strings.Join(scalars, " ")
	}
	tree := gotree.New(label)
	for _, child := range children {
		tree.AddTree(child)
	}
	return tree
}

func scalar(v reflect.Value) string {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "nil"
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.String {
		return strconv.Quote(v.String())
	}
	return fmt.Sprint(v.Interface())
}
