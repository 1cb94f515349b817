package sqlite

// Schema DDL. Each snapshot is an immutable copy of the roster; position
// columns keep insertion order.
const (
	createSnapshots = `CREATE TABLE IF NOT EXISTS snapshots (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    snapshot_id TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);`

	createStudents = `CREATE TABLE IF NOT EXISTS students (
    snapshot_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    student_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (snapshot_id, student_id),
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id) ON DELETE CASCADE
);`

	createCourses = `CREATE TABLE IF NOT EXISTS courses (
    snapshot_id TEXT NOT NULL,
    student_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    grade INTEGER NOT NULL CHECK (grade BETWEEN 0 AND 100),
    PRIMARY KEY (snapshot_id, student_id, name),
    FOREIGN KEY (snapshot_id, student_id) REFERENCES students(snapshot_id, student_id) ON DELETE CASCADE
);`
)

const (
	idxStudentsPosition = `CREATE INDEX IF NOT EXISTS idx_students_position ON students(snapshot_id, position);`
	idxCoursesPosition  = `CREATE INDEX IF NOT EXISTS idx_courses_position ON courses(snapshot_id, student_id, position);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createSnapshots,
	createStudents,
	createCourses,
}

var indexDDL = []string{
	idxStudentsPosition,
	idxCoursesPosition,
}
