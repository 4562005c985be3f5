package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	qtest "github.com/developer-hhiotsystems/terminology-extraction/internal/testing"
	"github.com/developer-hhiotsystems/terminology-extraction/relation"
)

func newTestStores(t *testing.T) (*TermStore, *RelationshipStore) {
	t.Helper()
	db := qtest.CreateTestDB(t)
	require.NoError(t, Migrate(db, nil))
	logger := zap.NewNop().Sugar()
	return NewTermStore(db, logger), NewRelationshipStore(db, logger)
}

func TestMigrateIdempotent(t *testing.T) {
	db := qtest.CreateTestDB(t)
	require.NoError(t, Migrate(db, nil))
	require.NoError(t, Migrate(db, nil), "second migration run must be a no-op")

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n))
	assert.Equal(t, 3, n, "one row per migration")
}

func TestTermStoreCreateAndLookup(t *testing.T) {
	terms, _ := newTestStores(t)

	id, err := terms.Create("Temperature Sensor")
	require.NoError(t, err)
	require.NotZero(t, id)

	// Lookup is case-insensitive via the normalized name.
	got, ok, err := terms.LookupByName("temperature sensor")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok, err = terms.LookupByName("unknown term")
	require.NoError(t, err)
	assert.False(t, ok, "missing term is not an error")
}

func TestTermStoreCreateDuplicateReturnsExistingID(t *testing.T) {
	terms, _ := newTestStores(t)

	first, err := terms.Create("bioreactor")
	require.NoError(t, err)

	second, err := terms.Create("Bioreactor") // same normalized name
	require.NoError(t, err)
	assert.Equal(t, first, second)

	n, err := terms.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTermStoreRejectsEmptyName(t *testing.T) {
	terms, _ := newTestStores(t)
	_, err := terms.Create("   ")
	assert.Error(t, err)
}

func TestRelationshipStoreCreateIdempotent(t *testing.T) {
	terms, rels := newTestStores(t)

	src, err := terms.Create("temperature sensor")
	require.NoError(t, err)
	dst, err := terms.Create("temperature")
	require.NoError(t, err)

	rec := RelationshipRecord{
		SourceTermID:     src,
		TargetTermID:     dst,
		Kind:             relation.KindMeasures,
		Confidence:       0.9,
		Evidence:         "measures",
		Context:          "A temperature sensor measures temperature.",
		ExtractionMethod: string(relation.MethodStructural),
	}

	created, err := rels.Create(rec)
	require.NoError(t, err)
	assert.True(t, created)

	// Same composite key again: skipped, not an error.
	created, err = rels.Create(rec)
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := rels.List()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, ValidationPending, stored[0].ValidationStatus)
	assert.Equal(t, string(relation.MethodStructural), stored[0].ExtractionMethod)
}

func TestRelationshipStoreDirectionMatters(t *testing.T) {
	terms, rels := newTestStores(t)

	a, err := terms.Create("pump")
	require.NoError(t, err)
	b, err := terms.Create("oil")
	require.NoError(t, err)

	for _, rec := range []RelationshipRecord{
		{SourceTermID: a, TargetTermID: b, Kind: relation.KindUses, Confidence: 0.8},
		{SourceTermID: b, TargetTermID: a, Kind: relation.KindUses, Confidence: 0.8},
	} {
		created, err := rels.Create(rec)
		require.NoError(t, err)
		assert.True(t, created)
	}

	stored, err := rels.List()
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestRelationshipStoreValidation(t *testing.T) {
	terms, rels := newTestStores(t)

	a, err := terms.Create("a")
	require.NoError(t, err)
	b, err := terms.Create("b")
	require.NoError(t, err)

	_, err = rels.Create(RelationshipRecord{
		SourceTermID: a, TargetTermID: a, Kind: relation.KindUses, Confidence: 0.8,
	})
	assert.Error(t, err, "self-relationship must be rejected")

	_, err = rels.Create(RelationshipRecord{
		SourceTermID: a, TargetTermID: b, Kind: "BOGUS", Confidence: 0.8,
	})
	assert.Error(t, err, "unknown kind must be rejected")

	_, err = rels.Create(RelationshipRecord{
		SourceTermID: a, TargetTermID: b, Kind: relation.KindUses, Confidence: 1.5,
	})
	assert.Error(t, err, "out-of-range confidence must be rejected")
}

func TestRelationshipStoreListResolved(t *testing.T) {
	terms, rels := newTestStores(t)

	src, err := terms.Create("temperature sensor")
	require.NoError(t, err)
	dst, err := terms.Create("temperature")
	require.NoError(t, err)

	_, err = rels.Create(RelationshipRecord{
		SourceTermID:     src,
		TargetTermID:     dst,
		Kind:             relation.KindMeasures,
		Confidence:       0.9,
		Evidence:         "measures",
		ExtractionMethod: string(relation.MethodStructural),
	})
	require.NoError(t, err)

	resolved, err := rels.ListResolved()
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "temperature sensor", resolved[0].SourceTerm)
	assert.Equal(t, "temperature", resolved[0].TargetTerm)
	assert.Equal(t, relation.KindMeasures, resolved[0].Kind)
	assert.Equal(t, relation.MethodStructural, resolved[0].Method)
}

func TestRelationshipStoreCountByKind(t *testing.T) {
	terms, rels := newTestStores(t)

	a, _ := terms.Create("a")
	b, _ := terms.Create("b")
	c, _ := terms.Create("c")

	for _, rec := range []RelationshipRecord{
		{SourceTermID: a, TargetTermID: b, Kind: relation.KindUses, Confidence: 0.8},
		{SourceTermID: a, TargetTermID: c, Kind: relation.KindUses, Confidence: 0.7},
		{SourceTermID: b, TargetTermID: c, Kind: relation.KindMeasures, Confidence: 0.6},
	} {
		_, err := rels.Create(rec)
		require.NoError(t, err)
	}

	counts, err := rels.CountByKind()
	require.NoError(t, err)
	assert.Equal(t, 2, counts[relation.KindUses])
	assert.Equal(t, 1, counts[relation.KindMeasures])
}
