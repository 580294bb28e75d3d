package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListFilter(t *testing.T) {
	t.Run("base filter", func(t *testing.T) {
		assert.Equal(t, bson.M{
			"isDeleted":   false,
			"deletedAt":   nil,
			"isPublished": true,
		}, NewListFilter().ToBSON())
	})

	t.Run("refinements", func(t *testing.T) {
		authorID := primitive.NewObjectID()
		got := ListQuery{
			AuthorID:    authorID.Hex(),
			Category:    "  tech ",
			Tags:        " go , web,",
			Subcategory: "backend",
		}.Filter().ToBSON()

		assert.Equal(t, authorID, got["authorId"])
		assert.Equal(t, "tech", got["category"])
		assert.Equal(t, bson.M{"$all": []string{"go", "web"}}, got["tags"])
		assert.Equal(t, bson.M{"$all": []string{"backend"}}, got["subcategory"])
	})

	t.Run("blank and invalid values are skipped", func(t *testing.T) {
		got := ListQuery{AuthorID: "123", Category: "  ", Tags: " , "}.Filter().ToBSON()

		assert.NotContains(t, got, "authorId")
		assert.NotContains(t, got, "category")
		assert.NotContains(t, got, "tags")
	})
}

func TestDeleteFilter(t *testing.T) {
	owner := primitive.NewObjectID()

	t.Run("always scoped to owner", func(t *testing.T) {
		f := NewDeleteFilter(owner).WithCategory("tech")

		assert.True(t, f.Satisfiable())
		assert.Equal(t, bson.M{"authorId": owner, "category": "tech"}, f.ToBSON())
	})

	t.Run("own author id is satisfiable", func(t *testing.T) {
		f := NewDeleteFilter(owner).WithAuthorID(owner.Hex())
		assert.True(t, f.Satisfiable())
	})

	t.Run("other or invalid author id is not", func(t *testing.T) {
		assert.False(t, NewDeleteFilter(owner).WithAuthorID(primitive.NewObjectID().Hex()).Satisfiable())
		assert.False(t, NewDeleteFilter(owner).WithAuthorID("garbage").Satisfiable())
	})

	t.Run("published refinement", func(t *testing.T) {
		f, err := DeleteQuery{Tags: "go", IsPublished: "false"}.Filter(owner)
		require.NoError(t, err)
		got := f.ToBSON()

		assert.Equal(t, false, got["isPublished"])
		assert.Equal(t, bson.M{"$all": []string{"go"}}, got["tags"])
	})
}
