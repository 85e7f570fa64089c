package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bookreviews/internal/book"
)

// SearchFilter matches books whose title or author contains the search term,
// case-insensitively. The term is quoted so regex metacharacters are always
// treated literally. An empty term matches every book.
func SearchFilter(search string) bson.D {
	if search == "" {
		return bson.D{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "title", Value: re}},
		bson.D{{Key: "author", Value: re}},
	}}}
}

// SortStage maps a sort mode to its ordering. Ties always break by newest
// created. Books without reviews carry avgRating 0 and a null
// latestReviewDate, so they sort after rated and reviewed books.
func SortStage(mode string) bson.D {
	switch mode {
	case book.SortRating:
		return bson.D{{Key: "avgRating", Value: -1}, {Key: "createdAt", Value: -1}}
	case book.SortNewest:
		return bson.D{{Key: "latestReviewDate", Value: -1}, {Key: "createdAt", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// BookListPipeline builds the full query plan for one page of enriched books:
// match, join reviews, derive rating statistics, order, paginate, shape.
// Sorting runs before projection so latestReviewDate is still available as a
// sort key.
func BookListPipeline(q book.Query) mongo.Pipeline {
	p := mongo.Pipeline{
		bson.D{{Key: "$match", Value: SearchFilter(q.Search)}},
	}
	p = append(p, reviewStatsStages(true)...)
	p = append(p,
		bson.D{{Key: "$sort", Value: SortStage(q.Sort)}},
		bson.D{{Key: "$skip", Value: q.Skip()}},
		bson.D{{Key: "$limit", Value: q.Limit}},
		bson.D{{Key: "$project", Value: bookProjection(true)}},
	)
	return p
}

// BookByIDPipeline builds the single-book query plan: the same rating and
// count enrichment as the list, without pagination or the latest review.
func BookByIDPipeline(id primitive.ObjectID) mongo.Pipeline {
	p := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}
	p = append(p, reviewStatsStages(false)...)
	p = append(p, bson.D{{Key: "$project", Value: bookProjection(false)}})
	return p
}

func reviewStatsStages(withLatest bool) []bson.D {
	hasReviews := bson.D{{Key: "$gt", Value: bson.A{
		bson.D{{Key: "$size", Value: "$reviewsData"}},
		0,
	}}}

	fields := bson.D{
		{Key: "avgRating", Value: bson.D{{Key: "$cond", Value: bson.D{
			{Key: "if", Value: hasReviews},
			{Key: "then", Value: bson.D{{Key: "$avg", Value: "$reviewsData.rating"}}},
			{Key: "else", Value: 0},
		}}}},
		{Key: "reviewCount", Value: bson.D{{Key: "$size", Value: "$reviewsData"}}},
	}

	if withLatest {
		fields = append(fields,
			bson.E{Key: "latestReview", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: hasReviews},
				{Key: "then", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{
					bson.D{{Key: "$sortArray", Value: bson.D{
						{Key: "input", Value: "$reviewsData"},
						{Key: "sortBy", Value: bson.D{{Key: "createdAt", Value: -1}}},
					}}},
					0,
				}}}},
				{Key: "else", Value: nil},
			}}}},
			bson.E{Key: "latestReviewDate", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: hasReviews},
				{Key: "then", Value: bson.D{{Key: "$max", Value: "$reviewsData.createdAt"}}},
				{Key: "else", Value: nil},
			}}}},
		)
	}

	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: reviewsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "book"},
			{Key: "as", Value: "reviewsData"},
		}}},
		{{Key: "$addFields", Value: fields}},
	}
}

func bookProjection(withLatest bool) bson.D {
	p := bson.D{
		{Key: "title", Value: 1},
		{Key: "author", Value: 1},
		{Key: "description", Value: 1},
		{Key: "publishedYear", Value: 1},
		{Key: "avgRating", Value: bson.D{{Key: "$round", Value: bson.A{"$avgRating", 1}}}},
		{Key: "reviewCount", Value: 1},
		{Key: "createdAt", Value: 1},
	}

	if withLatest {
		p = append(p, bson.E{Key: "latestReview", Value: bson.D{{Key: "$cond", Value: bson.D{
			{Key: "if", Value: "$latestReview"},
			{Key: "then", Value: bson.D{
				{Key: "reviewerName", Value: "$latestReview.reviewerName"},
				{Key: "rating", Value: "$latestReview.rating"},
				{Key: "comment", Value: "$latestReview.comment"},
				{Key: "createdAt", Value: "$latestReview.createdAt"},
			}},
			{Key: "else", Value: nil},
		}}}})
	}

	return p
}
