// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Pet is the predicate function for pet builders.
type Pet func(*sql.Selector)

// ServiceItem is the predicate function for serviceitem builders.
type ServiceItem func(*sql.Selector)

// ShiftCapacity is the predicate function for shiftcapacity builders.
type ShiftCapacity func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)

// Veterinarian is the predicate function for veterinarian builders.
type Veterinarian func(*sql.Selector)
