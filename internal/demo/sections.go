package demo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"arraylike/numarray"
	"arraylike/seqs"
)

var sections = []section{
	{"numeric-array", (*Runner).numericArray},
	{"list", (*Runner).list},
	{"tuple", (*Runner).tuple},
	{"dictionary", (*Runner).dictionary},
	{"multidim", (*Runner).multidim},
	{"people", (*Runner).people},
	{"strings", (*Runner).text},
	{"totals", (*Runner).totals},
	{"minmax", (*Runner).minMax},
	{"minmax-default", (*Runner).minMaxDefault},
	{"minmax-pro", (*Runner).minMaxPro},
}

// numericArray: fixed size, fixed type.
func (r *Runner) numericArray() {
	numbers := numarray.New[int](r.cfg.Size)

	// index 1 does not exist when size is 1
	if err := numbers.Set(1, 6); err == nil {
		v, _ := numbers.Get(1)
		r.println(v)
	}

	numbers.Fill(10)
	for i, v := range numbers.All() {
		r.println(i, ":", v)
	}
	r.println(numbers)
	r.println()
}

// list: variable size, variable type.
func (r *Runner) list() {
	items := []any{10, "cat", 3.14}
	for i := range len(items) {
		r.println(i, ":", items[i])
	}

	items = append(items, "dog")
	r.println(items[len(items)-1])
	r.println(items)
	r.println()
}

// tuple: fixed size, variable type.
func (r *Runner) tuple() {
	tuple := [4]any{100, "hello", 3.14, "world"}
	for i := range len(tuple) {
		r.println(i, ":", tuple[i])
	}
	r.println(tuple)
	r.println()
}

// dictionary: keys instead of indexes.
func (r *Runner) dictionary() {
	dict := map[string]any{"one": 50, "pi": 3.14, "helloworld": "this is a longer string"}

	for _, key := range sortedKeys(dict) {
		r.println(key, ":", dict[key])
	}
	r.println(dict)

	dict["dog"] = "cat"
	r.println(dict["dog"])
	r.println(dict)
	r.println()
}

func (r *Runner) multidim() {
	grid := numarray.NewGrid[int](r.cfg.Rows, r.cfg.Cols)
	r.println(grid)

	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			_ = grid.Set(i, j, i+1)
		}
	}
	r.println(grid)

	for i := 0; i < grid.Rows(); i++ {
		row, _ := grid.Row(i)
		r.println(row)
	}

	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			v, _ := grid.Get(i, j)
			r.printf("%d ", v)
		}
		r.println()
	}
	r.println()
}

type person struct {
	Age    int
	Gender string
	Color  string
}

// people: a map of records, the usual way to build an n-dimensional table.
func (r *Runner) people() {
	people := map[string]*person{
		"alice":   {Age: 29, Gender: "f", Color: "red"},
		"bob":     {Age: 24, Gender: "m", Color: "green"},
		"charlie": {Age: 32, Gender: "m", Color: "blue"},
	}
	r.printPeople(people)

	for _, p := range people {
		p.Age++
	}
	r.printPeople(people)

	for _, p := range people {
		if p.Gender == "m" {
			p.Gender = "f"
		} else {
			p.Gender = "m"
		}
	}
	r.printPeople(people)

	for _, p := range people {
		p.Color = strings.ToUpper(p.Color)
	}
	r.printPeople(people)

	people["bob"].Color = "purple"
	r.printPeople(people)
	r.println()
}

func (r *Runner) printPeople(people map[string]*person) {
	parts := make([]string, 0, len(people))
	for _, name := range sortedKeys(people) {
		p := people[name]
		parts = append(parts, fmt.Sprintf("%s: [%d %s %s]", name, p.Age, p.Gender, p.Color))
	}
	r.println("{" + strings.Join(parts, ", ") + "}")
}

// strings: a fixed size sequence of characters.
func (r *Runner) text() {
	const mystring = "hello world"

	for _, ch := range mystring {
		r.printf("%c", ch)
	}
	r.println()

	l := len(mystring)
	for i := 0; i < l; i++ {
		r.printf("%c", mystring[i])
	}
	r.println()

	var sb strings.Builder
	for i := 0; i < l; i++ {
		if i%2 == 1 {
			sb.WriteString(strings.ToUpper(mystring[i : i+1]))
		} else {
			sb.WriteByte(mystring[i])
		}
	}
	r.println(sb.String())

	for i := range seqs.Range(l-1, -1, -1) {
		r.printf("%c", mystring[i])
	}
	r.println()
	r.println()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
