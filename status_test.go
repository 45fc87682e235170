package moxml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbrandt/go-moxml"
	"github.com/nbrandt/go-moxml/xmltree"
)

func TestOperationStatusConstruction(t *testing.T) {
	s := moxml.NewOperationStatus(
		moxml.Attr{Name: "rn", Value: "operation"},
		moxml.Attr{Name: "status", Value: "success"},
	)

	require.Equal(t, moxml.OperationStatusClassID, s.ClassID())
	require.Equal(t, moxml.OperationStatusTag, s.ElementTag())
	require.Equal(t, []moxml.Attr{
		{Name: "rn", Value: "operation"},
		{Name: "status", Value: "success"},
	}, s.Attrs())
	require.False(t, s.IsDirty(), "constructor attributes represent known state")

	t.Run("reserved names are not stored", func(t *testing.T) {
		bad := moxml.NewOperationStatus(moxml.Attr{Name: "_hidden", Value: "x"})
		require.Empty(t, bad.Attrs())
	})
}

func TestOperationStatusTerminality(t *testing.T) {
	// The status element structurally contains children, but descent must
	// stop at it: attributes are ingested, nested elements are not.
	src := []byte(`<computeBlade dn="sys/blade-1">` +
		`<operationStatus rn="operation" status="success">` +
		`<detail code="200"></detail>` +
		`</operationStatus>` +
		`</computeBlade>`)

	root := moxml.NewObject("ComputeBlade", "computeBlade")
	require.NoError(t, moxml.Unmarshal(src, root, moxml.WithResolver(moxml.NewRegistry())))

	require.Equal(t, 1, root.ChildCount())
	status, ok := root.Children()[0].(*moxml.OperationStatus)
	require.True(t, ok)

	require.Equal(t, []moxml.Attr{
		{Name: "rn", Value: "operation"},
		{Name: "status", Value: "success"},
	}, status.Attrs())
	require.Equal(t, 0, status.ChildCount(), "no descent into a status leaf")
}

func TestBladeStatusResponse(t *testing.T) {
	src := []byte(`<computeBlade dn="sys/blade-1"><operationStatus rn="operation" status="success"/></computeBlade>`)

	root := moxml.NewObject("ComputeBlade", "computeBlade")
	require.NoError(t, moxml.Unmarshal(src, root, moxml.WithResolver(moxml.NewRegistry())))

	require.Equal(t, []moxml.Attr{{Name: "dn", Value: "sys/blade-1"}}, root.Attrs())
	require.Equal(t, 1, root.ChildCount())

	status := root.Children()[0].(*moxml.OperationStatus)
	require.Equal(t, []moxml.Attr{
		{Name: "rn", Value: "operation"},
		{Name: "status", Value: "success"},
	}, status.Attrs())
	require.Equal(t, 0, status.ChildCount())
}

func TestOperationStatusClone(t *testing.T) {
	s := moxml.NewOperationStatus(moxml.Attr{Name: "status", Value: "fail"})
	cl, ok := s.Clone().(*moxml.OperationStatus)
	require.True(t, ok)

	require.NoError(t, cl.SetAttr("status", "success"))
	v, _ := s.Attr("status")
	require.Equal(t, "fail", v)
}

func TestErrorResponse(t *testing.T) {
	t.Run("direct construction", func(t *testing.T) {
		e := moxml.NewErrorResponse("552", "authorization required")
		require.EqualError(t, e, "moxml: request failed with code 552: authorization required")
	})

	t.Run("without a description", func(t *testing.T) {
		e := moxml.NewErrorResponse("552", "")
		require.EqualError(t, e, "moxml: request failed with code 552")
	})

	t.Run("from a response element", func(t *testing.T) {
		el := xmltree.New("configResolveDn")
		el.Set("errorCode", "170")
		el.Set("errorDescr", "session timed out")

		e := moxml.ErrorResponseFromElement(el)
		require.Equal(t, "170", e.ErrorCode)
		require.Equal(t, "session timed out", e.ErrorDescr)
	})
}
