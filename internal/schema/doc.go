// Package schema holds the FlatBuffers bindings for the wasnn model format described in wasnn.fbs.
//
// Files other than this one are generated; regenerate them after editing the schema.
package schema

//go:generate flatc --go --gen-object-api --go-namespace schema -o .. wasnn.fbs

// SchemaVersion is the value written to Model.schema_version by this version of the bindings.
const SchemaVersion = 1
