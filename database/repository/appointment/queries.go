package appointmentRepo

import (
	"fmt"
	"time"

	"glamazon/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetActiveByDate returns every non-cancelled appointment on the given date,
// sorted by start time.
func (r *MongoAppointmentRepo) GetActiveByDate(date string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"date":   date,
		"status": bson.M{"$ne": models.AppointmentStatusCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// ListByUser returns a user's appointments sorted by date then time.
func (r *MongoAppointmentRepo) ListByUser(userID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// ListAdmin returns a filtered, paginated page of appointments with their
// owners embedded, plus the total count for the filter.
func (r *MongoAppointmentRepo) ListAdmin(filter AdminFilter) ([]models.AdminAppointment, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	match := bson.M{}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	if filter.Date != "" {
		match["date"] = filter.Date
	}

	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.AdminAppointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, total, nil
}

// CountAll counts every appointment document.
func (r *MongoAppointmentRepo) CountAll() (int64, error) {
	return r.count(bson.M{})
}

// CountByStatus counts appointments with the given status.
func (r *MongoAppointmentRepo) CountByStatus(status string) (int64, error) {
	return r.count(bson.M{"status": status})
}

// CountByDate counts appointments on the given calendar date.
func (r *MongoAppointmentRepo) CountByDate(date string) (int64, error) {
	return r.count(bson.M{"date": date})
}

// CountUpcoming counts active appointments on or after the given date.
// Dates are "YYYY-MM-DD" strings, so lexicographic comparison is chronological.
func (r *MongoAppointmentRepo) CountUpcoming(fromDate string) (int64, error) {
	return r.count(bson.M{
		"date": bson.M{"$gte": fromDate},
		"status": bson.M{"$nin": []string{
			models.AppointmentStatusCancelled,
			models.AppointmentStatusCompleted,
		}},
	})
}

// CountByUser counts a user's appointments.
func (r *MongoAppointmentRepo) CountByUser(userID string) (int64, error) {
	return r.count(bson.M{"user_id": userID})
}

// CountByUserAndStatus counts a user's appointments with the given status.
func (r *MongoAppointmentRepo) CountByUserAndStatus(userID, status string) (int64, error) {
	return r.count(bson.M{"user_id": userID, "status": status})
}

// CountUpcomingByUser counts a user's active appointments on or after the given date.
func (r *MongoAppointmentRepo) CountUpcomingByUser(userID, fromDate string) (int64, error) {
	return r.count(bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": fromDate},
		"status": bson.M{"$nin": []string{
			models.AppointmentStatusCancelled,
			models.AppointmentStatusCompleted,
		}},
	})
}

// CountUpdatedAfter counts appointments updated strictly after the given instant.
func (r *MongoAppointmentRepo) CountUpdatedAfter(t time.Time) (int64, error) {
	return r.count(bson.M{"updated_at": bson.M{"$gt": t}})
}

// LatestUpdatedAt returns the most recent appointment update time, or the zero
// time when the collection is empty.
func (r *MongoAppointmentRepo) LatestUpdatedAt() (time.Time, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetProjection(bson.M{"updated_at": 1})

	var doc struct {
		UpdatedAt time.Time `bson:"updated_at"`
	}
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to fetch latest appointment update: %w", err)
	}
	return doc.UpdatedAt, nil
}

func (r *MongoAppointmentRepo) count(filter bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}
