// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package controller

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	sitev1alpha1 "github.com/lexfrei/studio-site/api/v1alpha1"
)

var _ = Describe("ContactRequest Controller", func() {
	const (
		namespace = "default"
		retention = time.Hour
	)

	var (
		ctx        context.Context
		now        time.Time
		reconciler *ContactRequestReconciler
	)

	newContactRequest := func(name string) *sitev1alpha1.ContactRequest {
		return &sitev1alpha1.ContactRequest{
			ObjectMeta: metav1.ObjectMeta{
				Name:      name,
				Namespace: namespace,
			},
			Spec: sitev1alpha1.ContactRequestSpec{
				Name:     "Ann Lee",
				Email:    "ann@example.com",
				Phone:    "+7 700 000 00 00",
				Message:  "We need a warehouse team for the season.",
				Language: "en",
				Source:   "contacts",
			},
		}
	}

	reconcileAt := func(name string, at time.Time) (reconcile.Result, error) {
		now = at

		return reconciler.Reconcile(ctx, reconcile.Request{
			NamespacedName: types.NamespacedName{Name: name, Namespace: namespace},
		})
	}

	fetch := func(name string) (*sitev1alpha1.ContactRequest, error) {
		request := &sitev1alpha1.ContactRequest{}
		err := k8sClient.Get(ctx, types.NamespacedName{Name: name, Namespace: namespace}, request)

		return request, err
	}

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Now()
		reconciler = &ContactRequestReconciler{
			Client:    k8sClient,
			Scheme:    k8sClient.Scheme(),
			Retention: retention,
			Now:       func() time.Time { return now },
		}
	})

	Context("When reconciling a new ContactRequest", func() {
		const name = "contact-new"

		BeforeEach(func() {
			By("Creating a new ContactRequest resource")
			Expect(k8sClient.Create(ctx, newContactRequest(name))).To(Succeed())
		})

		AfterEach(func() {
			request, err := fetch(name)
			if err == nil {
				Expect(k8sClient.Delete(ctx, request)).To(Succeed())
			}
		})

		It("should mark the request received and requeue at the retention deadline", func() {
			result, err := reconcileAt(name, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.RequeueAfter).To(BeNumerically("~", retention, time.Minute))

			request, err := fetch(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(request.Status.Phase).To(Equal(sitev1alpha1.ContactRequestPhaseNew))
			Expect(request.Status.ReceivedAt).NotTo(BeNil())
			Expect(request.Status.HandledAt).To(BeNil())
			Expect(meta.IsStatusConditionTrue(request.Status.Conditions, sitev1alpha1.ConditionReceived)).To(BeTrue())
		})

		It("should keep the first receipt time on later reconciles", func() {
			first := now

			_, err := reconcileAt(name, first)
			Expect(err).NotTo(HaveOccurred())

			_, err = reconcileAt(name, first.Add(10*time.Minute))
			Expect(err).NotTo(HaveOccurred())

			request, err := fetch(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(request.Status.ReceivedAt.Time).To(BeTemporally("~", first, time.Second))
		})
	})

	Context("When a ContactRequest is marked handled", func() {
		const name = "contact-handled"

		BeforeEach(func() {
			request := newContactRequest(name)
			request.Spec.Handled = true
			Expect(k8sClient.Create(ctx, request)).To(Succeed())
		})

		AfterEach(func() {
			request, err := fetch(name)
			if err == nil {
				Expect(k8sClient.Delete(ctx, request)).To(Succeed())
			}
		})

		It("should move to the Handled phase", func() {
			_, err := reconcileAt(name, now)
			Expect(err).NotTo(HaveOccurred())

			request, err := fetch(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(request.Status.Phase).To(Equal(sitev1alpha1.ContactRequestPhaseHandled))
			Expect(request.Status.HandledAt).NotTo(BeNil())
			Expect(request.Status.ReceivedAt).NotTo(BeNil())
		})
	})

	Context("When a ContactRequest is past its retention", func() {
		const name = "contact-expired"

		BeforeEach(func() {
			Expect(k8sClient.Create(ctx, newContactRequest(name))).To(Succeed())
		})

		It("should delete the request", func() {
			start := now

			_, err := reconcileAt(name, start)
			Expect(err).NotTo(HaveOccurred())

			result, err := reconcileAt(name, start.Add(retention+time.Minute))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.RequeueAfter).To(BeZero())

			_, err = fetch(name)
			Expect(errors.IsNotFound(err)).To(BeTrue())
		})
	})

	Context("When the ContactRequest does not exist", func() {
		It("should return without error", func() {
			result, err := reconcileAt("contact-missing", now)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(reconcile.Result{}))
		})
	})

	Context("When retention is not configured", func() {
		It("should fall back to the default retention", func() {
			r := &ContactRequestReconciler{}
			Expect(r.retention()).To(Equal(DefaultRetention))
			Expect(r.now()).To(BeTemporally("~", time.Now(), time.Second))
		})
	})
})
