package store

// Schema for the workout log. All ids are opaque TEXT uuids and timestamps
// are stored as SQLite TIMESTAMP values. Cascade rules are declared on every
// foreign key; the explicit delete path in cascade.go keeps the same
// guarantees when foreign-key enforcement is switched off (see db.go).
//
// order_index is 1-based within its parent scope and carries a UNIQUE
// constraint per parent so a concurrent duplicate assignment surfaces as a
// constraint error instead of silently corrupting the ordering.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	username      TEXT UNIQUE NOT NULL,
	created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS workouts (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	notes      TEXT,
	date       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,

	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS exercises (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	category   TEXT,
	metric     TEXT,
	created_at TIMESTAMP NOT NULL,

	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS workout_exercises (
	id          TEXT PRIMARY KEY,
	workout_id  TEXT NOT NULL,
	exercise_id TEXT NOT NULL,
	order_index INTEGER NOT NULL,
	notes       TEXT,
	created_at  TIMESTAMP NOT NULL,

	FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
	FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE,
	UNIQUE (workout_id, order_index)
);

CREATE TABLE IF NOT EXISTS sets (
	id                  TEXT PRIMARY KEY,
	workout_exercise_id TEXT NOT NULL,
	reps                INTEGER NOT NULL,
	weight              REAL,
	duration            REAL,
	distance            REAL,
	notes               TEXT,
	order_index         INTEGER NOT NULL,
	created_at          TIMESTAMP NOT NULL,

	FOREIGN KEY (workout_exercise_id) REFERENCES workout_exercises(id) ON DELETE CASCADE,
	UNIQUE (workout_exercise_id, order_index)
);

CREATE TABLE IF NOT EXISTS user_biometrics (
	user_id    TEXT UNIQUE NOT NULL,
	weight     REAL NOT NULL,
	sex        TEXT NOT NULL CHECK (sex IN ('male', 'female')),
	height     REAL NOT NULL,
	build      TEXT NOT NULL CHECK (build IN ('slim', 'average', 'athletic', 'muscular', 'heavy')),
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL,

	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_workouts_user_date ON workouts(user_id, date DESC);
CREATE INDEX IF NOT EXISTS idx_exercises_user ON exercises(user_id);
CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id);
CREATE INDEX IF NOT EXISTS idx_workout_exercises_exercise ON workout_exercises(exercise_id);
CREATE INDEX IF NOT EXISTS idx_sets_workout_exercise ON sets(workout_exercise_id);
`
