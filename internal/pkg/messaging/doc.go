// Package messaging provides a broker-agnostic publish/consume abstraction
// with implementations for Kafka, NATS, NSQ, Google Pub/Sub, and an
// in-process broker for local development.
package messaging
