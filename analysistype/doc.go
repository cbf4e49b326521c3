// Package analysistype defines the tagged enumeration of mechanism
// families (Simple, Elevator, Arm, Drivetrain, DrivetrainAngular) and the
// arity/column metadata each one carries, per spec.md §3/§4.H and the
// tagged-union Design Note in spec.md §9.
package analysistype
