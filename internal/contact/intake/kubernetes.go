// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package intake

import (
	"context"
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	sitev1alpha1 "github.com/lexfrei/studio-site/api/v1alpha1"
	"github.com/lexfrei/studio-site/internal/contact"
)

// Kubernetes stores each request as a ContactRequest resource.
type Kubernetes struct {
	client    client.Client
	namespace string
}

// NewKubernetes returns a submitter writing into namespace.
func NewKubernetes(c client.Client, namespace string) *Kubernetes {
	if namespace == "" {
		namespace = "default"
	}

	return &Kubernetes{client: c, namespace: namespace}
}

// Submit creates the ContactRequest.
func (k *Kubernetes) Submit(ctx context.Context, req contact.Request) error {
	request := &sitev1alpha1.ContactRequest{
		ObjectMeta: metav1.ObjectMeta{
			GenerateName: "contact-",
			Namespace:    k.namespace,
			Labels: map[string]string{
				"app.kubernetes.io/managed-by": "studio-site",
				"site.k8s.lex.la/language":     string(req.Language),
			},
		},
		Spec: sitev1alpha1.ContactRequestSpec{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Message:  req.Message,
			Language: string(req.Language),
			Source:   req.Source,
		},
	}

	err := k.client.Create(ctx, request)
	if err == nil {
		return nil
	}

	err = fmt.Errorf("create ContactRequest: %w", err)

	switch {
	case apierrors.IsInvalid(err), apierrors.IsBadRequest(err), apierrors.IsAlreadyExists(err):
		return contact.Rejected(err)
	case apierrors.IsTimeout(err), apierrors.IsServerTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return contact.Timeout(err)
	default:
		return contact.Transport(err)
	}
}
