// Package validation holds the pure form-level checks shared by the
// booking and registration endpoints. Every function returns a
// field -> message map; an empty map means the input is valid.
package validation

import "strings"

// Errors maps a form field to its first violated rule.
type Errors map[string]string

func (e Errors) add(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// EmailOK checks the local@domain.tld shape: no whitespace, exactly one
// split on '@', and a '.' somewhere after it.
func EmailOK(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || strings.ContainsAny(email, " \t\n") {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// PhoneOK requires at least ten digits, ignoring separators.
func PhoneOK(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

type ReservationForm struct {
	Name      string
	Email     string
	Phone     string
	Company   string
	FleetSize string
	Message   string
}

func ValidateReservation(f ReservationForm) Errors {
	errs := Errors{}
	if blank(f.Name) {
		errs.add("name", "name is required")
	}
	if !EmailOK(f.Email) {
		errs.add("email", "a valid email address is required")
	}
	if !PhoneOK(f.Phone) {
		errs.add("phone", "phone number must have at least 10 digits")
	}
	if blank(f.Company) {
		errs.add("company", "company is required")
	}
	if len(f.Message) > 1000 {
		errs.add("message", "message must be at most 1000 characters")
	}
	return errs
}

type TripForm struct {
	TripType          string
	PickupCity        string
	DropCity          string
	PickupDate        string
	PickupTime        string
	LuggageCount      int
	VehicleType       string
	CustomerName      string
	CustomerPhone     string
	CustomerEmail     string
	EstimatedDistance *float64
}

func ValidateTrip(f TripForm) Errors {
	errs := Errors{}
	if f.TripType != "drop_trip" && f.TripType != "round_trip" {
		errs.add("tripType", "tripType must be drop_trip or round_trip")
	}
	if blank(f.PickupCity) {
		errs.add("pickupCity", "pickup city is required")
	}
	if blank(f.DropCity) {
		errs.add("dropCity", "drop city is required")
	} else if strings.EqualFold(strings.TrimSpace(f.PickupCity), strings.TrimSpace(f.DropCity)) {
		errs.add("dropCity", "drop city must differ from pickup city")
	}
	if blank(f.PickupDate) {
		errs.add("pickupDate", "pickup date is required")
	}
	if blank(f.PickupTime) {
		errs.add("pickupTime", "pickup time is required")
	}
	if f.LuggageCount < 0 || f.LuggageCount > 50 {
		errs.add("luggageCount", "luggage count must be between 0 and 50")
	}
	if blank(f.VehicleType) {
		errs.add("vehicleType", "vehicle type is required")
	}
	if blank(f.CustomerName) {
		errs.add("customerName", "customer name is required")
	}
	if !PhoneOK(f.CustomerPhone) {
		errs.add("customerPhone", "phone number must have at least 10 digits")
	}
	if !EmailOK(f.CustomerEmail) {
		errs.add("customerEmail", "a valid email address is required")
	}
	if f.EstimatedDistance != nil && *f.EstimatedDistance < 0 {
		errs.add("estimatedDistance", "estimated distance cannot be negative")
	}
	return errs
}

type DriverForm struct {
	Name          string
	Phone         string
	Email         string
	LicenseNumber string
	LicenseExpiry string
	Address       string
	Experience    int
}

func ValidateDriver(f DriverForm) Errors {
	errs := Errors{}
	if blank(f.Name) {
		errs.add("name", "name is required")
	}
	if !PhoneOK(f.Phone) {
		errs.add("phone", "phone number must have at least 10 digits")
	}
	if !EmailOK(f.Email) {
		errs.add("email", "a valid email address is required")
	}
	if len(strings.TrimSpace(f.LicenseNumber)) < 5 {
		errs.add("licenseNumber", "license number must be at least 5 characters")
	}
	if blank(f.LicenseExpiry) {
		errs.add("licenseExpiry", "license expiry is required")
	}
	if len(strings.TrimSpace(f.Address)) < 10 {
		errs.add("address", "address must be at least 10 characters")
	}
	if f.Experience < 0 || f.Experience > 50 {
		errs.add("experience", "experience must be between 0 and 50 years")
	}
	return errs
}

type TruckForm struct {
	VehicleType        string
	RegistrationNumber string
	Model              string
	Year               int
	Color              string
	InsuranceNumber    string
	InsuranceExpiry    string
	FitnessExpiry      string
	OwnerID            string
	OwnerName          string
	OwnerPhone         string
}

func ValidateTruck(f TruckForm) Errors {
	errs := Errors{}
	if blank(f.VehicleType) {
		errs.add("vehicleType", "vehicle type is required")
	}
	if len(strings.TrimSpace(f.RegistrationNumber)) < 5 {
		errs.add("registrationNumber", "registration number must be at least 5 characters")
	}
	if blank(f.Model) {
		errs.add("model", "model is required")
	}
	if f.Year < 1990 || f.Year > 2030 {
		errs.add("year", "year must be between 1990 and 2030")
	}
	if blank(f.Color) {
		errs.add("color", "color is required")
	}
	if len(strings.TrimSpace(f.InsuranceNumber)) < 5 {
		errs.add("insuranceNumber", "insurance number must be at least 5 characters")
	}
	if blank(f.InsuranceExpiry) {
		errs.add("insuranceExpiry", "insurance expiry is required")
	}
	if blank(f.FitnessExpiry) {
		errs.add("fitnessExpiry", "fitness expiry is required")
	}
	if blank(f.OwnerID) {
		errs.add("ownerId", "owner id is required")
	}
	if blank(f.OwnerName) {
		errs.add("ownerName", "owner name is required")
	}
	if !PhoneOK(f.OwnerPhone) {
		errs.add("ownerPhone", "phone number must have at least 10 digits")
	}
	return errs
}

type LocationForm struct {
	Latitude  float64
	Longitude float64
	Heading   *float64
	Speed     *float64
}

func ValidateLocation(f LocationForm) Errors {
	errs := Errors{}
	if f.Latitude < -90 || f.Latitude > 90 {
		errs.add("latitude", "latitude must be between -90 and 90")
	}
	if f.Longitude < -180 || f.Longitude > 180 {
		errs.add("longitude", "longitude must be between -180 and 180")
	}
	if f.Heading != nil && (*f.Heading < 0 || *f.Heading > 360) {
		errs.add("heading", "heading must be between 0 and 360")
	}
	if f.Speed != nil && *f.Speed < 0 {
		errs.add("speed", "speed cannot be negative")
	}
	return errs
}

type RegisterForm struct {
	Name     string
	Email    string
	Phone    string
	Password string
	UserType string
}

func ValidateRegister(f RegisterForm) Errors {
	errs := Errors{}
	if blank(f.Name) {
		errs.add("name", "name is required")
	}
	if !EmailOK(f.Email) {
		errs.add("email", "a valid email address is required")
	}
	if !PhoneOK(f.Phone) {
		errs.add("phone", "phone number must have at least 10 digits")
	}
	if len(f.Password) < 6 {
		errs.add("password", "password must be at least 6 characters")
	}
	if f.UserType != "customer" && f.UserType != "driver" {
		errs.add("userType", "userType must be customer or driver")
	}
	return errs
}
