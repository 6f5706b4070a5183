package listops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	for _, tc := range []struct {
		input       string
		expected    Op
		expectedErr error
	}{
		{input: "push:5", expected: Op{Kind: OpPush, Value: 5}},
		{input: "  PUSH: -12 ", expected: Op{Kind: OpPush, Value: -12}},
		{input: "push:2147483647", expected: Op{Kind: OpPush, Value: 2147483647}},
		{input: "pop", expected: Op{Kind: OpPop}},
		{input: "Peek", expected: Op{Kind: OpPeek}},
		{input: "len", expected: Op{Kind: OpLen}},
		{input: "drop", expected: Op{Kind: OpDrop}},
		{input: "push", expectedErr: ErrInvalidValue},
		{input: "push:abc", expectedErr: ErrInvalidValue},
		{input: "push:2147483648", expectedErr: ErrInvalidValue},
		{input: "pop:1", expectedErr: ErrInvalidValue},
		{input: "shift", expectedErr: ErrUnknownOp},
		{input: "", expectedErr: ErrUnknownOp},
	} {
		t.Run(tc.input, func(t *testing.T) {
			op, err := ParseOp(tc.input)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, op)
		})
	}
}

func TestParseScript(t *testing.T) {
	t.Run("mixed_args_and_commas", func(t *testing.T) {
		ops, err := ParseScript([]string{"push:1,push:2", "pop", " , ", "len"})
		require.NoError(t, err)
		require.Equal(t, []Op{
			{Kind: OpPush, Value: 1},
			{Kind: OpPush, Value: 2},
			{Kind: OpPop},
			{Kind: OpLen},
		}, ops)
	})

	t.Run("error_reports_position", func(t *testing.T) {
		_, err := ParseScript([]string{"push:1", "pop,bogus"})
		require.ErrorIs(t, err, ErrUnknownOp)
		require.ErrorContains(t, err, "operation 3")
	})

	t.Run("empty", func(t *testing.T) {
		ops, err := ParseScript(nil)
		require.NoError(t, err)
		require.Empty(t, ops)
	})
}

func TestParseOpRoundTripsEveryKind(t *testing.T) {
	for kind, name := range opNames {
		t.Run(name, func(t *testing.T) {
			input := name
			if kind == OpPush {
				input += ":1"
			}

			op, err := ParseOp(input)
			require.NoError(t, err)
			require.Equal(t, kind, op.Kind)
			require.Equal(t, input, op.String())
		})
	}
}

func TestOpString(t *testing.T) {
	require.Equal(t, "push:-3", Op{Kind: OpPush, Value: -3}.String())
	require.Equal(t, "drop", Op{Kind: OpDrop}.String())
	require.Equal(t, "OpKind(42)", OpKind(42).String())
}
