// Package gen generates random certification trees for exercising the
// trust engine, grounded in original_source/advogato/graphgen.py: a
// seed vertex recursively grows 1..MaxChildren children per vertex down
// to MaxDepth, with depth-keyed human-readable names. Unlike the
// original's name-list-JSON-backed namer, gen.DefaultNamer derives
// unique depth-keyed names synthetically, so the generator has no
// asset-file dependency.
package gen
