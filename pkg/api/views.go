package api

import (
	"github.com/netfossil/nrbf/pkg/records"
)

// graphView renders a decoded stream as a JSON-friendly document. Every
// addressable record appears once in the records list; anywhere else it
// is rendered as a {"$ref": id} stub, so cyclic graphs produce finite
// output.
func graphView(header *records.StreamHeader, graph *records.Graph) map[string]interface{} {
	recs := make([]interface{}, 0, len(graph.Records))
	for _, rec := range graph.Records {
		recs = append(recs, recordView(rec))
	}

	unresolved := []int32{}
	for _, ref := range graph.Unresolved() {
		unresolved = append(unresolved, ref.IDRef)
	}

	return map[string]interface{}{
		"root_id":       header.RootID,
		"major_version": header.MajorVersion,
		"minor_version": header.MinorVersion,
		"records":       recs,
		"unresolved":    unresolved,
	}
}

// recordView renders one record in full, with nested values reduced to
// reference stubs.
func recordView(rec records.Record) map[string]interface{} {
	view := map[string]interface{}{
		"record": rec.RecordType().String(),
	}

	switch r := rec.(type) {
	case *records.StreamHeader:
		view["root_id"] = r.RootID
		view["major_version"] = r.MajorVersion
		view["minor_version"] = r.MinorVersion

	case *records.BinaryLibrary:
		view["id"] = r.LibraryID
		view["library"] = r.LibraryName

	case *records.BinaryObjectString:
		view["id"] = r.ObjectID
		view["value"] = r.Value

	case *records.MemberReference:
		view["ref"] = r.IDRef
		view["state"] = r.State().String()

	case *records.MemberPrimitiveTyped:
		view["type"] = r.PrimitiveType.String()
		view["value"] = r.Value

	case *records.ObjectNull:
		view["count"] = r.Count

	case *records.ClassRecord:
		view["id"] = r.ObjectID
		view["class"] = r.ClassName
		if r.LibraryID != 0 {
			view["library_id"] = r.LibraryID
		}
		fields := make(map[string]interface{}, len(r.Fields))
		for name, value := range r.Fields {
			fields[name] = valueView(value)
		}
		view["fields"] = fields

	case *records.ArraySinglePrimitive:
		view["id"] = r.ObjectID
		view["type"] = r.PrimitiveType.String()
		view["values"] = r.Values

	case *records.ArraySingleObject:
		view["id"] = r.ObjectID
		view["items"] = itemViews(r.Items)

	case *records.ArraySingleString:
		view["id"] = r.ObjectID
		view["items"] = itemViews(r.Items)
	}

	return view
}

// valueView renders a member slot: raw primitives pass through, nested
// records collapse to {"$ref": id} stubs.
func valueView(v interface{}) interface{} {
	switch r := v.(type) {
	case nil:
		return nil
	case *records.MemberReference:
		stub := map[string]interface{}{"$ref": r.IDRef}
		if r.State() == records.ResolutionDangling {
			stub["dangling"] = true
		}
		return stub
	case *records.ObjectNull:
		return nil
	case *records.MemberPrimitiveTyped:
		return r.Value
	case *records.BinaryObjectString:
		return map[string]interface{}{"$ref": r.ObjectID}
	case *records.ClassRecord:
		return map[string]interface{}{"$ref": r.ObjectID}
	case *records.ArraySinglePrimitive:
		return map[string]interface{}{"$ref": r.ObjectID}
	case *records.ArraySingleObject:
		return map[string]interface{}{"$ref": r.ObjectID}
	case *records.ArraySingleString:
		return map[string]interface{}{"$ref": r.ObjectID}
	case *records.BinaryLibrary:
		return map[string]interface{}{"$ref": r.LibraryID}
	default:
		return v
	}
}

func itemViews(items []interface{}) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = valueView(item)
	}
	return out
}
