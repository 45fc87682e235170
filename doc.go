/*
Package moxml converts managed-object trees to XML request documents and
parses XML response documents back into typed object trees, tracking
which objects carry unsynchronized ("dirty") local changes along the way.
It is the marshaling core of a management-API client; the network
transport that carries the documents and the per-resource class catalog
sit above it.

A managed object is a Node: it has a class identifier, an XML element
tag, an ordered set of string-valued attributes, and child nodes in
insertion order. Request trees are built directly:

	blade := moxml.NewObject("ComputeBlade", "computeBlade")
	blade.SetAttr("dn", "sys/blade-1")

	power := moxml.NewObject("ComputePower", "power")
	power.SetAttr("state", "up")
	blade.AddChild(power)

	out, err := moxml.Marshal(blade)
	if err != nil {
		// handle error
	}
	// out: <computeBlade dn="sys/blade-1"><power state="up"></power></computeBlade>

Response trees are rebuilt by resolving each child element's tag through
a Registry and recursing:

	reg := moxml.NewRegistry()
	reg.Register("computeBlade", func() moxml.Node {
		return moxml.NewObject("ComputeBlade", "computeBlade")
	})

	root := moxml.NewObject("ComputeBlade", "computeBlade")
	err := moxml.Unmarshal(resp, root, moxml.WithResolver(reg), moxml.WithHandle(session))

A tag with no registry entry fails with *UnknownTypeError. Operation
status elements resolve to the terminal OperationStatus variant: its
attributes are ingested, but deserialization never descends into it.

The Filter variant expresses query criteria and reserves the attribute
name "class": whatever the internal field is called, it always
serializes as the literal XML attribute class.

Dirty tracking is per node and aggregates over subtrees: SetAttr and
RemoveAttr mark a node dirty, IsDirty reports whether the node or any
descendant is dirty, and MarkClean resets the whole subtree.
Deserialization never marks nodes dirty, since ingested state is by
definition the synchronized state. Clone produces a structurally
independent deep copy that shares only the session handle.

Trees are exclusively owned: the package performs no locking, and two
goroutines must not mutate or serialize the same tree concurrently.
*/
package moxml
