// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package v1alpha1

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ContactRequestPhase is the handling phase of a contact request.
type ContactRequestPhase string

// Contact request phases.
const (
	ContactRequestPhaseNew     ContactRequestPhase = "New"
	ContactRequestPhaseHandled ContactRequestPhase = "Handled"
)

// ConditionReceived is set once the controller has seen the request.
const ConditionReceived = "Received"

// ContactRequestSpec defines the desired state of ContactRequest.
type ContactRequestSpec struct {
	// Name is how the visitor introduced themselves.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=2
	Name string `json:"name"`

	// Email is the visitor's reply address.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:Pattern=`^[^\s@]+@[^\s@]+\.[^\s@]+$`
	Email string `json:"email"`

	// Phone is the visitor's phone number as typed.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=5
	Phone string `json:"phone"`

	// Message is the request text.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=10
	Message string `json:"message"`

	// Language is the site language the request was sent in.
	// +kubebuilder:validation:Enum=ru;kz;en
	// +optional
	Language string `json:"language,omitempty"`

	// Source is the page the form was submitted from.
	// +optional
	Source string `json:"source,omitempty"`

	// Handled is set by a manager once the request has been answered.
	// +optional
	Handled bool `json:"handled,omitempty"`

	// Retention overrides how long the request is kept.
	// +optional
	Retention *metav1.Duration `json:"retention,omitempty"`
}

// ContactRequestStatus defines the observed state of ContactRequest.
type ContactRequestStatus struct {
	// +optional
	Phase ContactRequestPhase `json:"phase,omitempty"`

	// ReceivedAt is when the controller first saw the request.
	// +optional
	ReceivedAt *metav1.Time `json:"receivedAt,omitempty"`

	// HandledAt is when the request was marked handled.
	// +optional
	HandledAt *metav1.Time `json:"handledAt,omitempty"`

	// +listType=map
	// +listMapKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Name",type=string,JSONPath=`.spec.name`
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// ContactRequest is a message left through the site contact form.
type ContactRequest struct {
	metav1.TypeMeta `json:",inline"`

	// +optional
	metav1.ObjectMeta `json:"metadata,omitzero"`

	// +required
	Spec ContactRequestSpec `json:"spec"`

	// +optional
	Status ContactRequestStatus `json:"status,omitzero"`
}

// +kubebuilder:object:root=true

// ContactRequestList contains a list of ContactRequest
type ContactRequestList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitzero"`

	Items []ContactRequest `json:"items"`
}

// ExpiresAt returns when the request falls out of retention, counted from
// creation or, failing that, from receipt. spec.retention wins over
// defaultRetention. A zero time means it never expires.
func (c *ContactRequest) ExpiresAt(defaultRetention time.Duration) time.Time {
	retention := defaultRetention
	if c.Spec.Retention != nil {
		retention = c.Spec.Retention.Duration
	}

	if retention <= 0 {
		return time.Time{}
	}

	switch {
	case !c.CreationTimestamp.IsZero():
		return c.CreationTimestamp.Add(retention)
	case c.Status.ReceivedAt != nil:
		return c.Status.ReceivedAt.Add(retention)
	default:
		return time.Time{}
	}
}

// IsExpired reports whether the request is past its retention at now.
func (c *ContactRequest) IsExpired(now time.Time, defaultRetention time.Duration) bool {
	expiresAt := c.ExpiresAt(defaultRetention)
	if expiresAt.IsZero() {
		return false
	}

	return !now.Before(expiresAt)
}

// DisplayName is used in logs and events.
func (c *ContactRequest) DisplayName() string {
	if c.Spec.Name == "" {
		return c.Name
	}

	return c.Spec.Name + " <" + c.Spec.Email + ">"
}

func init() {
	SchemeBuilder.Register(&ContactRequest{}, &ContactRequestList{})
}
