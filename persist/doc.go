// Package persist saves and loads certification graphs to/from disk, a
// Go-native replacement for graphgen.py's
// `pickle.dump(h, open(f"./graphs/{uuid.uuid4()}.graph", "wb"))`: gob
// replaces pickle, and github.com/google/uuid replaces uuid.uuid4(),
// but the on-disk naming convention (a UUID-stamped file under a graphs
// directory) is kept identical.
package persist
