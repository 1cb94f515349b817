// Package grades implements the in-memory grade store: a roster of student
// records, each owning its list of course records. Both levels are held in
// container.List values bound to the clone and destroy functions in this
// package, so copying a store copies every course and destroying it
// releases every course.
//
// A Store is not safe for concurrent use.
package grades
