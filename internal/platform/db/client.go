// Package db wires the MongoDB document store: client construction, the
// named collections the portal uses, and the metadata envelope stamped on
// every mutable document.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. The store is schema-less; these constants are the only
// registry of what exists.
const (
	CollUsers         = "users"
	CollPatients      = "patients"
	CollAppointments  = "appointments"
	CollDoctors       = "doctors"
	CollHospitals     = "hospitals"
	CollBills         = "bills"
	CollTestResults   = "testResults"
	CollOperations    = "operations"
	CollConsultations = "consultations"
)

// Collections lists every known collection name.
func Collections() []string {
	return []string{
		CollUsers, CollPatients, CollAppointments, CollDoctors,
		CollHospitals, CollBills, CollTestResults, CollOperations,
		CollConsultations,
	}
}

// Connect establishes a MongoDB client and verifies connectivity with a
// ping before returning.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}
