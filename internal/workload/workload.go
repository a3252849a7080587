package workload

import (
	"fmt"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Hash algorithm names accepted in a map block
const (
	HashMapHash = "maphash"
	HashCRC32   = "crc32"
)

// Key generator names accepted in a map block
const (
	GeneratorUUID = "uuid"
	GeneratorName = "name"
	GeneratorSeq  = "seq"
)

// Workload - The top level structure of a workload file
//   - Map is an optional block filling a bucket map with generated keys
//   - Graph is an optional block describing a directed graph by node names
type Workload struct {
	Map   *MapBlock   `hcl:"map,block"`
	Graph *GraphBlock `hcl:"graph,block"`
}

// MapBlock - Describes how to fill a bucket map
//   - Buckets is the fixed number of buckets, 0 gives the default
//   - Hash is the hash algorithm name, empty gives maphash
//   - Keys is the number of keys to generate and put
//   - Generator is the key generator name, empty gives seq. Only seq and uuid give unique keys,
//     name keys may repeat and a repeated key overwrites the earlier one
//   - Remove is the number of generated keys to remove again afterwards, a repeated key is only
//     removed once
type MapBlock struct {
	Buckets   int    `hcl:"buckets,optional"`
	Hash      string `hcl:"hash,optional"`
	Keys      int    `hcl:"keys"`
	Generator string `hcl:"generator,optional"`
	Remove    int    `hcl:"remove,optional"`
}

// GraphBlock - Describes a graph
//   - Nodes are the unique node names, in the order the nodes are created
//   - Lines are the directed lines between named nodes
type GraphBlock struct {
	Nodes []string    `hcl:"nodes"`
	Lines []LineBlock `hcl:"line,block"`
}

// LineBlock - A directed line between two named nodes
type LineBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// Load - Parses and decodes the workload file at path
func Load(path string) (workload *Workload, err error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		err = fmt.Errorf("failed to parse workload file %s: %w", path, diags)
		return
	}

	return decode(file, path)
}

// Parse - Parses and decodes a workload given as source, filename is only used in diagnostics
func Parse(src []byte, filename string) (workload *Workload, err error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		err = fmt.Errorf("failed to parse workload %s: %w", filename, diags)
		return
	}

	return decode(file, filename)
}

// decode - Decodes a parsed file into a Workload and validates it
func decode(file *hcl.File, filename string) (workload *Workload, err error) {
	var w Workload
	diags := gohcl.DecodeBody(file.Body, nil, &w)
	if diags.HasErrors() {
		err = fmt.Errorf("failed to decode workload %s: %w", filename, diags)
		return
	}

	err = w.validate()
	if err != nil {
		err = fmt.Errorf("invalid workload %s: %w", filename, err)
		return
	}

	workload = &w

	return
}

// validate - Checks values that HCL decoding can not check
func (W *Workload) validate() error {
	if W.Map != nil {
		m := W.Map
		if m.Buckets < 0 {
			return fmt.Errorf("map buckets must not be negative, got %d", m.Buckets)
		}
		if m.Keys < 0 {
			return fmt.Errorf("map keys must not be negative, got %d", m.Keys)
		}
		if m.Remove < 0 || m.Remove > m.Keys {
			return fmt.Errorf("map remove must be between 0 and keys (%d), got %d", m.Keys, m.Remove)
		}
		switch m.Hash {
		case "", HashMapHash, HashCRC32:
		default:
			return fmt.Errorf("unknown hash algorithm %q", m.Hash)
		}
		switch m.Generator {
		case "", GeneratorUUID, GeneratorName, GeneratorSeq:
		default:
			return fmt.Errorf("unknown key generator %q", m.Generator)
		}
	}

	return nil
}
