package solve

import (
	"testing"

	"github.com/GRVigo/speedsolve/internal/cube"
	"github.com/stretchr/testify/require"
)

func TestFromStickerSolvedCubeIsSolved(t *testing.T) {
	sc := cube.NewCube(3)
	c, err := FromSticker(sc)
	require.NoError(t, err)
	require.True(t, c.IsSolvedCube())
}

func TestScrambleToCubeMatchesDirectCubieApplication(t *testing.T) {
	scramble := "R U R' U' R' F R2 U' R' U' R U R' F'"

	direct := Solved()
	alg, err := ParseAlgorithm(scramble)
	require.NoError(t, err)
	direct.ApplyAlgorithm(alg)

	bridged, bridgedAlg, err := ScrambleToCube(scramble)
	require.NoError(t, err)
	require.Equal(t, alg.String(), bridgedAlg.String())
	require.Equal(t, direct.CPerm, bridged.CPerm)
	require.Equal(t, direct.COri, bridged.COri)
	require.Equal(t, direct.EPerm, bridged.EPerm)
	require.Equal(t, direct.EOri, bridged.EOri)
}

func TestToStickerMovesRoundTripsThroughStickerEngine(t *testing.T) {
	alg, err := ParseAlgorithm("R U R' U'")
	require.NoError(t, err)

	moves, err := ToStickerMoves(alg)
	require.NoError(t, err)
	require.Len(t, moves, 4)

	sc := cube.NewCube(3)
	sc.ApplyMoves(moves)

	cb, err := FromSticker(sc)
	require.NoError(t, err)

	expect := Solved()
	expect.ApplyAlgorithm(alg)
	require.Equal(t, expect.CPerm, cb.CPerm)
	require.Equal(t, expect.EPerm, cb.EPerm)
}

func TestToStickerMoveRejectsNonMoveStep(t *testing.T) {
	_, err := ToStickerMove(ParenOpen())
	require.Error(t, err)
}
