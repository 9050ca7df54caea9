// Package plan builds and validates QGroundControl .plan documents for
// ArduPilot Rover missions.
package plan
