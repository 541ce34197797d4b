package catalog

// Built-in catalog used on first run, before an admin has added anything.

func seedProducts() []Product {
	return []Product{
		{
			ID:          "p101",
			Name:        "Arduino Uno R3",
			Description: "Microcontroller board based on the ATmega328P with 14 digital I/O pins, 6 analog inputs, a 16 MHz ceramic resonator and a USB connection. Everything needed to get started with embedded projects.",
			Price:       24.99,
			ImageURL:    "https://picsum.photos/400/300?random=1",
			Category:    "Microcontrollers",
			Stock:       50,
			Rating:      4.8,
			Reviews:     120,
			Condition:   New,
		},
		{
			ID:          "p102",
			Name:        "Raspberry Pi 4 Model B (4GB RAM)",
			Description: "Powerful single-board computer for DIY electronics, home automation and media centers. Quad-core Cortex-A72 @ 1.5GHz, dual-band wireless.",
			Price:       75.00,
			ImageURL:    "https://picsum.photos/400/300?random=2",
			Category:    "Single-Board Computers",
			Stock:       30,
			Rating:      4.9,
			Reviews:     95,
			Condition:   New,
		},
		{
			ID:          "p103",
			Name:        "Assorted Resistor Kit (600 pcs)",
			Description: "600 assorted 1/4W 1% resistors covering common values from 1 Ohm to 1 MOhm.",
			Price:       12.50,
			ImageURL:    "https://picsum.photos/400/300?random=3",
			Category:    "General Electronic Components",
			Stock:       100,
			Rating:      4.5,
			Reviews:     200,
			Condition:   New,
		},
		{
			ID:          "p104",
			Name:        "Electrolytic Capacitor Kit",
			Description: "Variety of electrolytic capacitor values for power supplies, audio projects and general circuit building.",
			Price:       15.75,
			ImageURL:    "https://picsum.photos/400/300?random=4",
			Category:    "General Electronic Components",
			Stock:       80,
			Rating:      4.6,
			Reviews:     150,
			Condition:   New,
		},
		{
			ID:          "p105",
			Name:        "Breadboard (830 tie points)",
			Description: "Standard breadboard with 830 tie points, perfect for quickly prototyping electronic circuits.",
			Price:       5.99,
			ImageURL:    "https://picsum.photos/400/300?random=5",
			Category:    "Prototyping",
			Stock:       120,
			Rating:      4.7,
			Reviews:     300,
			Condition:   New,
		},
		{
			ID:          "p106",
			Name:        "Jumper Wire Kit",
			Description: "120 jumper wires (male-male, male-female, female-female) in various lengths for breadboarding.",
			Price:       8.99,
			ImageURL:    "https://picsum.photos/400/300?random=6",
			Category:    "Prototyping",
			Stock:       150,
			Rating:      4.7,
			Reviews:     280,
			Condition:   New,
		},
		{
			ID:          "p107",
			Name:        "Electronics Soldering Kit (60W)",
			Description: "Complete soldering kit with a 60W iron, stand, solder and desoldering pump. Great for beginners and hobbyists.",
			Price:       35.00,
			ImageURL:    "https://picsum.photos/400/300?random=7",
			Category:    "Tools",
			Stock:       40,
			Rating:      4.6,
			Reviews:     180,
			Condition:   New,
		},
		{
			ID:          "p108",
			Name:        "Digital Multimeter",
			Description: "Accurate digital multimeter for measuring voltage, current, resistance and continuity. A must-have for electronics work.",
			Price:       29.99,
			ImageURL:    "https://picsum.photos/400/300?random=8",
			Category:    "Tools",
			Stock:       60,
			Rating:      4.8,
			Reviews:     250,
			Condition:   New,
		},
		{
			ID:          "p109",
			Name:        "Samsung 970 EVO Plus 1TB NVMe SSD",
			Description: "Reliable NVMe SSD for fast boot-ups and rapid application loading. Sequential read/write up to 3,500/3,300 MB/s.",
			Price:       99.99,
			ImageURL:    "https://picsum.photos/400/300?random=30",
			Category:    "Computer Parts",
			Stock:       80,
			Rating:      4.9,
			Reviews:     450,
			Condition:   New,
		},
		{
			ID:          "p110",
			Name:        "Digital Oscilloscope (2-Channel, 100MHz)",
			Description: "Compact digital oscilloscope for circuit debugging, signal analysis and education. 2 channels, 100MHz bandwidth.",
			Price:       299.00,
			ImageURL:    "https://picsum.photos/400/300?random=40",
			Category:    "Tools",
			Stock:       15,
			Rating:      4.8,
			Reviews:     30,
			Condition:   New,
		},
	}
}

func seedCourses() []Course {
	return []Course{
		{
			ID:               "c201",
			Title:            "Beginner Arduino Programming",
			ShortDescription: "Get started with Arduino! Learn the basics of programming and building electronic circuits with hands-on projects.",
			LongDescription:  "Designed for absolute beginners with no prior experience in electronics or programming. Set up your Arduino board, write your first sketch, control LEDs, read sensor data and build simple interactive projects.",
			ImageURL:         "https://picsum.photos/400/300?random=11",
			Instructor:       "Dr. Emily Tech",
			Duration:         "4 Months",
			Price:            99.99,
			Difficulty:       Beginner,
			Modules: []Module{
				{Title: "Introduction to Arduino", Content: "The Arduino platform, IDE setup and your first Blink sketch."},
				{Title: "Basic I/O Operations", Content: "Digital outputs with LEDs, digital inputs with push buttons, debouncing."},
				{Title: "Analog Inputs", Content: "The ADC, potentiometers, light sensors and the map() function."},
				{Title: "Serial Communication", Content: "Debugging with the serial monitor and exchanging data with the computer."},
				{Title: "First Project: Traffic Light System", Content: "Planning, wiring and programming a complete traffic light sequence."},
			},
			LearningSchedule: []string{
				"Week 1-2: Module 1 (Introduction to Arduino)",
				"Week 3-5: Module 2 (Basic I/O Operations)",
				"Week 6-8: Module 3 (Analog Inputs)",
				"Week 9-10: Module 4 (Serial Communication)",
				"Week 11-13: Module 5 (First Project: Traffic Light System)",
				"Week 14-16: Buffer/Review",
			},
		},
		{
			ID:               "c202",
			Title:            "Advanced Raspberry Pi Projects",
			ShortDescription: "Dive into advanced Raspberry Pi projects, including home automation, IoT, and custom server setups.",
			LongDescription:  "Takes you beyond the basics: web servers, IoT with Node-RED, computer vision with the Pi camera and building a NAS. Basic Linux command line and Python experience recommended.",
			ImageURL:         "https://picsum.photos/400/300?random=12",
			Instructor:       "Prof. Alex Gadget",
			Duration:         "6 Months",
			Price:            149.99,
			Difficulty:       Advanced,
			Modules: []Module{
				{Title: "Linux Deep Dive", Content: "Advanced CLI usage, permissions, processes and Bash scripting."},
				{Title: "Web Server Setup", Content: "Apache/Nginx installation, dynamic content with PHP and Python."},
				{Title: "IoT with Node-RED", Content: "Flows, GPIO nodes, MQTT and dashboard integrations."},
				{Title: "Computer Vision Basics", Content: "OpenCV setup, image processing fundamentals and face detection."},
				{Title: "Building a NAS", Content: "Samba/NFS file sharing, backups with rsync and secure remote access."},
			},
			LearningSchedule: []string{
				"Month 1: Module 1 (Linux Deep Dive)",
				"Month 2: Module 2 (Web Server Setup)",
				"Month 3: Module 3 (IoT with Node-RED)",
				"Month 4: Module 4 (Computer Vision Basics)",
				"Month 5: Module 5 (Building a NAS)",
				"Month 6: Buffer/Review (Capstone Project)",
			},
		},
		{
			ID:               "c203",
			Title:            "Electronics Repair Fundamentals",
			ShortDescription: "Learn essential techniques to diagnose and repair common electronic devices.",
			LongDescription:  "Covers safe soldering and desoldering, component identification, reading schematics and systematic troubleshooting on real devices. Ideal for hobbyists and aspiring technicians.",
			ImageURL:         "https://picsum.photos/400/300?random=13",
			Instructor:       "Engineer Sarah Fixit",
			Duration:         "8 Months",
			Price:            199.99,
			Difficulty:       Intermediate,
			Modules: []Module{
				{Title: "Safety and Workshop Setup", Content: "ESD precautions, essential tools and workplace safety."},
				{Title: "Component Identification & Testing", Content: "Passive and active components, datasheets, testing with a DMM."},
				{Title: "Soldering and Desoldering", Content: "Through-hole and beginner SMD techniques."},
				{Title: "Basic Circuit Analysis", Content: "Ohm's law, power and Kirchhoff's laws applied to simple circuits."},
				{Title: "Troubleshooting Methodologies", Content: "Systematic fault finding and common failure modes."},
				{Title: "Common Repairs", Content: "Power supply repair and case studies on simple boards."},
			},
			LearningSchedule: []string{
				"Month 1: Module 1 (Safety and Workshop Setup)",
				"Month 2 - Mid Month 3: Module 2 (Component Identification & Testing)",
				"Mid Month 3 - End Month 4: Module 3 (Soldering and Desoldering)",
				"Month 5: Module 4 (Basic Circuit Analysis)",
				"Month 6 - Mid Month 7: Module 5 (Troubleshooting Methodologies)",
				"Mid Month 7 - End Month 8: Module 6 (Common Repairs)",
			},
		},
	}
}
