package api

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCodec_Registered(t *testing.T) {
	t.Parallel()

	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	require.Equal(t, CodecName, c.Name())
}

func TestCodec_PlainMessage(t *testing.T) {
	t.Parallel()

	c := jsonCodec{}
	b, err := c.Marshal(&SetHighScoreRequest{GameID: "memory_match", Score: 42})
	require.NoError(t, err)
	require.JSONEq(t, `{"gameId":"memory_match","score":42}`, string(b))

	var got SetHighScoreRequest
	require.NoError(t, c.Unmarshal(b, &got))
	require.Equal(t, 42, got.Score)

	var empty Empty
	require.NoError(t, c.Unmarshal(nil, &empty))
}

func TestCodec_ProtoMessage(t *testing.T) {
	t.Parallel()

	c := jsonCodec{}
	b, err := c.Marshal(wrapperspb.String("calm"))
	require.NoError(t, err)
	require.JSONEq(t, `"calm"`, string(b))

	var got wrapperspb.StringValue
	require.NoError(t, c.Unmarshal(b, &got))
	require.Equal(t, "calm", got.GetValue())
}

func TestServiceDesc_CoversInterface(t *testing.T) {
	t.Parallel()

	iface := reflect.TypeOf((*MindMatesServer)(nil)).Elem()
	require.Len(t, ServiceDesc.Methods, iface.NumMethod())

	seen := map[string]bool{}
	for _, m := range ServiceDesc.Methods {
		_, ok := iface.MethodByName(m.MethodName)
		require.True(t, ok, m.MethodName)
		require.False(t, seen[m.MethodName], "duplicate %s", m.MethodName)
		seen[m.MethodName] = true
	}
	for m := range PublicMethods {
		require.Contains(t, m, ServiceName)
	}
}
