package memstore

import (
	"time"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/consult"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/directory"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/patient"
)

// The seed dataset for the pilot deployment. Order is load-bearing for the
// list endpoints: filters and searches return records in this sequence.

func seedPatients() []*patient.Patient {
	return []*patient.Patient{
		{
			HealthCardID:      "BHC0001",
			Name:              "Rajesh Kumar",
			Age:               45,
			Gender:            patient.GenderMale,
			Village:           "Gandhigram",
			District:          "Jaipur",
			State:             "Rajasthan",
			Phone:             "9876543210",
			BloodGroup:        "O+",
			Allergies:         []string{"Penicillin", "Dust"},
			ChronicConditions: []string{"Diabetes", "Hypertension"},
			History: []patient.HistoryEntry{
				{
					Date:         "2023-10-15",
					Doctor:       "Dr. Patel",
					Diagnosis:    "Viral Fever",
					Prescription: "Paracetamol 500mg, Cetirizine 10mg",
					FollowUp:     "2023-10-22",
				},
				{
					Date:         "2023-08-02",
					Doctor:       "Dr. Sharma",
					Diagnosis:    "Gastroenteritis",
					Prescription: "ORS, Probiotics, Omeprazole 20mg",
					FollowUp:     "2023-08-09",
				},
			},
		},
		{
			HealthCardID: "BHC0002",
			Name:         "Priya Singh",
			Age:          32,
			Gender:       patient.GenderFemale,
			Village:      "Sundarpur",
			District:     "Lucknow",
			State:        "Uttar Pradesh",
			Phone:        "8765432109",
			BloodGroup:   "B+",
			Allergies:    []string{"Sulfa drugs"},
			History: []patient.HistoryEntry{
				{
					Date:         "2023-11-05",
					Doctor:       "Dr. Verma",
					Diagnosis:    "Acute Bronchitis",
					Prescription: "Azithromycin 500mg, Salbutamol inhaler",
					FollowUp:     "2023-11-12",
				},
			},
		},
		{
			HealthCardID:      "BHC0003",
			Name:              "Arjun Reddy",
			Age:               28,
			Gender:            patient.GenderMale,
			Village:           "Krishnapuram",
			District:          "Hyderabad",
			State:             "Telangana",
			Phone:             "7654321098",
			BloodGroup:        "A-",
			ChronicConditions: []string{"Asthma"},
			History: []patient.HistoryEntry{
				{
					Date:         "2023-09-20",
					Doctor:       "Dr. Rao",
					Diagnosis:    "Asthma exacerbation",
					Prescription: "Prednisolone 40mg, Montelukast 10mg",
					FollowUp:     "2023-09-27",
				},
			},
		},
	}
}

func seedHospitals() []*directory.Hospital {
	return []*directory.Hospital{
		{
			ID:            1,
			Name:          "District Hospital Jaipur",
			Location:      "Jaipur, Rajasthan",
			TotalBeds:     100,
			AvailableBeds: 15,
			OxygenLevel:   directory.OxygenAdequate,
			ICUAvailable:  5,
			Contact:       "0141-2222222",
		},
		{
			ID:            2,
			Name:          "Community Health Center Gandhigram",
			Location:      "Gandhigram, Rajasthan",
			TotalBeds:     30,
			AvailableBeds: 8,
			OxygenLevel:   directory.OxygenLow,
			ICUAvailable:  1,
			Contact:       "0141-3333333",
		},
		{
			ID:            3,
			Name:          "Rural Primary Health Center",
			Location:      "Sundarpur, Uttar Pradesh",
			TotalBeds:     20,
			AvailableBeds: 12,
			OxygenLevel:   directory.OxygenAdequate,
			ICUAvailable:  0,
			Contact:       "0522-4444444",
		},
	}
}

func seedAmbulances() []*directory.Ambulance {
	return []*directory.Ambulance{
		{ID: "AMB001", Driver: "Ramesh", Phone: "9988776655", Status: directory.AmbulanceAvailable, Location: "Jaipur Central"},
		{ID: "AMB002", Driver: "Suresh", Phone: "8877665544", Status: directory.AmbulanceInTransit, Location: "En route to Gandhigram"},
		{ID: "AMB003", Driver: "Mahesh", Phone: "7766554433", Status: directory.AmbulanceAvailable, Location: "Lucknow East"},
	}
}

func seedDoctors() []*directory.Doctor {
	return []*directory.Doctor{
		{ID: "DOC001", Name: "Dr. Anjali Sharma", Specialization: "General Physician", Hospital: "District Hospital Jaipur", Phone: "9876543210", Available: true},
		{ID: "DOC002", Name: "Dr. Vikram Patel", Specialization: "Cardiologist", Hospital: "District Hospital Jaipur", Phone: "9765432109", Available: true},
		{ID: "DOC003", Name: "Dr. Sanjay Verma", Specialization: "Neurologist", Hospital: "District Hospital Jaipur", Phone: "9654321098", Available: false},
		{ID: "DOC004", Name: "Dr. Meena Reddy", Specialization: "Pediatrician", Hospital: "Community Health Center Gandhigram", Phone: "9543210987", Available: true},
	}
}

func seedSpecialists() []*directory.Specialist {
	return []*directory.Specialist{
		{
			ID:             "SPEC001",
			Name:           "Dr. Vikram Patel",
			Specialization: "Cardiologist",
			Hospital:       "District Hospital Jaipur",
			Phone:          "9765432109",
			Available:      true,
			Schedule: []directory.ScheduleSlot{
				{Time: "09:00 AM", PatientName: "Priya Singh", Type: "Follow-up", Status: "Scheduled"},
				{Time: "10:30 AM", PatientName: "Rajesh Kumar", Type: "Emergency Consultation", Status: "Pending"},
				{Time: "02:00 PM", PatientName: "Arjun Reddy", Type: "New Consultation", Status: "Scheduled"},
				{Time: "04:00 PM", Type: "Telemedicine Session", Status: "Scheduled"},
			},
		},
	}
}

func seedConsults() []*consult.Request {
	return []*consult.Request{
		{
			ID:           "CONS001",
			HealthCardID: "BHC0001",
			PatientName:  "Rajesh Kumar",
			SpecialistID: "SPEC001",
			RequestedBy:  "Dr. Anjali Sharma",
			Priority:     consult.PriorityHigh,
			Symptoms:     []string{"Chest pain", "Shortness of breath"},
			RequestTime:  time.Date(2023, 12, 10, 9, 30, 0, 0, time.UTC),
			Status:       consult.StatusPending,
		},
		{
			ID:           "CONS002",
			HealthCardID: "BHC0003",
			PatientName:  "Arjun Reddy",
			SpecialistID: "SPEC001",
			RequestedBy:  "Dr. Sanjay Verma",
			Priority:     consult.PriorityMedium,
			Symptoms:     []string{"Irregular heartbeat", "Fatigue"},
			RequestTime:  time.Date(2023, 12, 10, 10, 15, 0, 0, time.UTC),
			Status:       consult.StatusPending,
		},
	}
}

func seedSymptoms() []string {
	return []string{
		"Fever", "Cough", "Headache", "Fatigue", "Shortness of breath",
		"Chest pain", "Abdominal pain", "Nausea", "Vomiting", "Diarrhea",
		"Rash", "Itching", "Swelling", "Dizziness", "Joint pain",
		"Muscle pain", "Sore throat", "Runny nose", "Loss of taste", "Loss of smell",
		"Back pain", "Neck pain", "Eye pain", "Ear pain", "Sensitivity to light",
	}
}
