package tree

import "encoding/xml"

// Defaults for the school attributes, which no transform derives from row data.
const (
	DefaultName = "WGen School"
	DefaultID   = "100"
)

// School is the root of the tree.
type School struct {
	XMLName xml.Name `xml:"school" yaml:"-"`
	Name    string   `xml:"name,attr" yaml:"name"`
	ID      string   `xml:"id,attr" yaml:"id"`
	Grades  []Grade  `xml:"grade" yaml:"grades"`
}

// Grade groups the classrooms of one grade label.
type Grade struct {
	ID         string      `xml:"id,attr" yaml:"id"`
	Classrooms []Classroom `xml:"classroom" yaml:"classrooms"`
}

// Classroom holds up to two teachers and any number of students.
type Classroom struct {
	ID       string    `xml:"id,attr" yaml:"id"`
	Name     string    `xml:"name,attr" yaml:"name"`
	Teachers []Teacher `xml:"teacher" yaml:"teachers"`
	Students []Student `xml:"student" yaml:"students"`
}

// Teacher is a classroom teacher.
type Teacher struct {
	ID        string `xml:"id,attr" yaml:"id"`
	FirstName string `xml:"first_name,attr" yaml:"first_name"`
	LastName  string `xml:"last_name,attr" yaml:"last_name"`
}

// Student is a student enrolled in a classroom.
type Student struct {
	ID        string `xml:"id,attr" yaml:"id"`
	FirstName string `xml:"first_name,attr" yaml:"first_name"`
	LastName  string `xml:"last_name,attr" yaml:"last_name"`
}

// New returns a school with the given attributes and no grades.
func New(name, id string) School {
	return School{Name: name, ID: id, Grades: make([]Grade, 0)}
}

// Counts returns the number of grades, classrooms and students in the school.
func (s School) Counts() (grades, classrooms, students int) {
	grades = len(s.Grades)

	for _, g := range s.Grades {
		classrooms += len(g.Classrooms)

		for _, c := range g.Classrooms {
			students += len(c.Students)
		}
	}

	return grades, classrooms, students
}

// normalize replaces nil slices with empty ones so that a decoded tree looks the
// same whether or not an element list was present in the input.
func (s *School) normalize() {
	if s.Grades == nil {
		s.Grades = make([]Grade, 0)
	}

	for i := range s.Grades {
		g := &s.Grades[i]
		if g.Classrooms == nil {
			g.Classrooms = make([]Classroom, 0)
		}

		for j := range g.Classrooms {
			c := &g.Classrooms[j]
			if c.Teachers == nil {
				c.Teachers = make([]Teacher, 0)
			}

			if c.Students == nil {
				c.Students = make([]Student, 0)
			}
		}
	}
}
