/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package batch

// RequestKind identifies the batch request a verification runs on behalf of.
// Several validators relax or tighten their rules depending on whether the
// request submits, modifies, selects, or merely inspects an object.
type RequestKind int

const (
	RequestUnknown RequestKind = iota
	RequestQueueJob
	RequestModifyJob
	RequestStatusJob
	RequestSelectJobs
	RequestSubmitReservation
	RequestModifyReservation
	RequestStatusReservation
	RequestManager
	RequestStatusQueue
	RequestStatusServer
)

// String implements fmt.Stringer.
func (r RequestKind) String() string {
	switch r {
	case RequestQueueJob:
		return "queue-job"
	case RequestModifyJob:
		return "modify-job"
	case RequestStatusJob:
		return "status-job"
	case RequestSelectJobs:
		return "select-jobs"
	case RequestSubmitReservation:
		return "submit-reservation"
	case RequestModifyReservation:
		return "modify-reservation"
	case RequestStatusReservation:
		return "status-reservation"
	case RequestManager:
		return "manager"
	case RequestStatusQueue:
		return "status-queue"
	case RequestStatusServer:
		return "status-server"
	}
	return "unknown"
}

// Selecting reports whether the request selects/filters existing objects
// rather than creating or modifying one.
func (r RequestKind) Selecting() bool {
	return r == RequestSelectJobs
}

// StatusOnly reports whether the request only reads object status.
func (r RequestKind) StatusOnly() bool {
	switch r {
	case RequestStatusJob, RequestStatusReservation, RequestStatusQueue, RequestStatusServer:
		return true
	}
	return false
}

// ObjectKind identifies the parent object the attribute belongs to.
type ObjectKind int

const (
	ObjectUnknown ObjectKind = iota
	ObjectJob
	ObjectQueue
	ObjectServer
	ObjectReservation
	ObjectNode
)

// String implements fmt.Stringer.
func (o ObjectKind) String() string {
	switch o {
	case ObjectJob:
		return "job"
	case ObjectQueue:
		return "queue"
	case ObjectServer:
		return "server"
	case ObjectReservation:
		return "reservation"
	case ObjectNode:
		return "node"
	}
	return "unknown"
}

// CommandKind identifies the client command that produced the request.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandSubmit
	CommandAlter
	CommandStatus
	CommandSelect
	CommandManager
)

// Operator is the comparison operator attached to an attribute in
// select-style requests.
type Operator int

const (
	OpSet Operator = iota
	OpEQ
	OpNE
	OpGE
	OpGT
	OpLE
	OpLT
	OpUnset
)

// String implements fmt.Stringer.
func (op Operator) String() string {
	switch op {
	case OpSet:
		return "set"
	case OpEQ:
		return "=="
	case OpNE:
		return "!="
	case OpGE:
		return ">="
	case OpGT:
		return ">"
	case OpLE:
		return "<="
	case OpLT:
		return "<"
	case OpUnset:
		return "unset"
	}
	return "?"
}

// Attribute is one name/value pair from a batch request's attribute list.
// Resource is set only for resource-bearing attributes such as
// Resource_List. Value is immutable for the duration of a verification
// call; validators that normalize it hand the replacement back through
// the outcome instead of writing here.
type Attribute struct {
	Name     string   `yaml:"name" json:"name"`
	Resource string   `yaml:"resource,omitempty" json:"resource,omitempty"`
	Value    string   `yaml:"value" json:"value"`
	Op       Operator `yaml:"op,omitempty" json:"op,omitempty"`
}

// Context carries the immutable request facts every validator receives.
type Context struct {
	Request RequestKind
	Object  ObjectKind
	Command CommandKind
}
