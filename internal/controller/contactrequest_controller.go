// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package controller

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	sitev1alpha1 "github.com/lexfrei/studio-site/api/v1alpha1"
)

// DefaultRetention is how long contact requests are kept when neither the
// reconciler nor the request sets a retention.
const DefaultRetention = 90 * 24 * time.Hour

// ContactRequestReconciler reconciles a ContactRequest object
type ContactRequestReconciler struct {
	client.Client

	Scheme *runtime.Scheme

	// Retention applies to requests without spec.retention.
	Retention time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// +kubebuilder:rbac:groups=site.k8s.lex.la,resources=contactrequests,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=site.k8s.lex.la,resources=contactrequests/status,verbs=get;update;patch

// Reconcile records receipt and handling of contact requests and deletes
// them once their retention has passed.
func (r *ContactRequestReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := logf.FromContext(ctx)

	request := &sitev1alpha1.ContactRequest{}
	if err := r.Get(ctx, req.NamespacedName, request); err != nil {
		if errors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}

		return ctrl.Result{}, err
	}

	now := r.now()
	retention := r.retention()

	if request.IsExpired(now, retention) {
		if err := r.Delete(ctx, request); err != nil && !errors.IsNotFound(err) {
			log.Error(err, "Failed to delete expired ContactRequest")

			return ctrl.Result{}, err
		}

		log.Info("Deleted expired ContactRequest", "from", request.DisplayName())

		return ctrl.Result{}, nil
	}

	statusChanged := false

	if request.Status.Phase == "" {
		received := metav1.NewTime(now)
		request.Status.Phase = sitev1alpha1.ContactRequestPhaseNew
		request.Status.ReceivedAt = &received
		meta.SetStatusCondition(&request.Status.Conditions, metav1.Condition{
			Type:               sitev1alpha1.ConditionReceived,
			Status:             metav1.ConditionTrue,
			Reason:             "Received",
			Message:            "Contact request received from the site",
			ObservedGeneration: request.Generation,
			LastTransitionTime: received,
		})
		statusChanged = true
		log.Info("Received ContactRequest", "from", request.DisplayName(), "language", request.Spec.Language)
	}

	if request.Spec.Handled && request.Status.Phase != sitev1alpha1.ContactRequestPhaseHandled {
		handled := metav1.NewTime(now)
		request.Status.Phase = sitev1alpha1.ContactRequestPhaseHandled
		request.Status.HandledAt = &handled
		statusChanged = true
		log.Info("ContactRequest handled", "from", request.DisplayName())
	}

	if statusChanged {
		if err := r.Status().Update(ctx, request); err != nil {
			log.Error(err, "Failed to update ContactRequest status")

			return ctrl.Result{}, err
		}
	}

	if expiresAt := request.ExpiresAt(retention); !expiresAt.IsZero() {
		if remaining := expiresAt.Sub(now); remaining > 0 {
			return ctrl.Result{RequeueAfter: remaining}, nil
		}
	}

	return ctrl.Result{}, nil
}

func (r *ContactRequestReconciler) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}

	return r.Now()
}

func (r *ContactRequestReconciler) retention() time.Duration {
	if r.Retention == 0 {
		return DefaultRetention
	}

	return r.Retention
}

// SetupWithManager sets up the controller with the Manager.
func (r *ContactRequestReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&sitev1alpha1.ContactRequest{}).
		Named("contactrequest").
		Complete(r)
}
