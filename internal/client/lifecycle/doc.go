// Package lifecycle coordinates the order screens of the staff dashboard.
//
// A Coordinator owns the working set of orders loaded by the last filter, the
// selection used for batch actions, one StaffPicker per pickable role and the
// patient selection of the meal ordering screen. Every remote call goes through
// OrderService, which api.Client implements; every outcome the user should see
// goes through Notifier.
//
// Batch actions validate locally first. A missing selection, location or person
// is reported as ErrEmptySelection, ErrLocationRequired or ErrPersonRequired and
// no request is sent. Only one submission may be outstanding at a time; others
// fail with ErrSubmissionInFlight.
package lifecycle
